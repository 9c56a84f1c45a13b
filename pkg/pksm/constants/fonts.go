package constants

// FontSize is a text scale relative to the system font's native height.
type FontSize float32

const (
	FontSize18 FontSize = 0.72
	FontSize15 FontSize = 0.6
	FontSize14 FontSize = 0.56
	FontSize12 FontSize = 0.50
	FontSize11 FontSize = 0.46
	FontSize9  FontSize = 0.37
)

// BaseFontPixels is the pixel height of text drawn at scale 1.0.
const BaseFontPixels = 30

// Pixels returns the pixel height of the font at this scale, at least 1.
func (f FontSize) Pixels() int {
	px := int(float32(f)*BaseFontPixels + 0.5)
	if px < 1 {
		return 1
	}
	return px
}
