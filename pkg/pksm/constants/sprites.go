package constants

// SpriteID names an entry of the UI sprite sheet.
type SpriteID int

const (
	SpriteNone           SpriteID = iota
	SpritePartEditor20x2          // Two-column, twenty-row grid background for the top screen
	SpriteBgStripeTop             // 7x7 diagonal stripe tile
	SpriteBgStripeBottom          // 7x7 diagonal stripe tile, bottom palette
	SpriteIconFolder              // Folder icon for directory entries
	SpriteIconScript              // Document icon for file entries
	SpriteIconSearch              // Magnifier drawn inside the search box
	SpriteBoxSearch               // 170x23 search box frame
	SpriteButtonBlue              // Generic bottom-screen button
	SpritePointer                 // Selection pointer arrow
)

// SpriteNames maps ids to the asset names used by the renderers.
var SpriteNames = map[SpriteID]string{
	SpritePartEditor20x2: "part_editor_20x2",
	SpriteBgStripeTop:    "bg_stripe_top",
	SpriteBgStripeBottom: "bg_stripe_bottom",
	SpriteIconFolder:     "icon_folder",
	SpriteIconScript:     "icon_script",
	SpriteIconSearch:     "icon_search",
	SpriteBoxSearch:      "box_search",
	SpriteButtonBlue:     "button_blue",
	SpritePointer:        "pointer",
}
