package pksm

// MenuItem represents a single entry of the main screen's action list.
type MenuItem struct {
	Text     string      // Localized display text
	Action   func()      // Run when the item is activated with A or a tap
	Metadata interface{} // Application-specific data attached to the item
}
