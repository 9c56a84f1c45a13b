package pksm

// ChoiceAction is the answer given to a choice message.
type ChoiceAction int

const (
	ChoiceCancelled ChoiceAction = iota // User declined (B button)
	ChoiceConfirmed                     // User accepted (A button)
)

func (a ChoiceAction) String() string {
	if a == ChoiceConfirmed {
		return "confirmed"
	}
	return "cancelled"
}

// KeyboardResult is what the search keyboard hands back when it closes.
type KeyboardResult struct {
	Text string
	// Err is ErrCancelled when the keyboard was dismissed without
	// confirming; Text is then empty.
	Err error
}
