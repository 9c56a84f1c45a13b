package internal

import "image"

// KeyboardDimensions holds calculated keyboard positioning values.
// This is computed once from the display size and reused across layout setup.
type KeyboardDimensions struct {
	WindowWidth     int
	WindowHeight    int
	KeyboardWidth   int
	KeyboardHeight  int
	StartX          int
	TextInputY      int
	KeyboardStartY  int
	TextInputHeight int
}

// CalculateKeyboardDimensions computes the keyboard dimensions for a
// display. The keyboard spans 95% of the width; the text field sits on top.
func CalculateKeyboardDimensions(windowWidth, windowHeight int) KeyboardDimensions {
	keyboardWidth := (windowWidth * 95) / 100
	textInputHeight := windowHeight / 8
	textInputY := windowHeight / 20
	keyboardStartY := textInputY + textInputHeight + 8
	keyboardHeight := windowHeight - keyboardStartY - windowHeight/20
	startX := (windowWidth - keyboardWidth) / 2

	return KeyboardDimensions{
		WindowWidth:     windowWidth,
		WindowHeight:    windowHeight,
		KeyboardWidth:   keyboardWidth,
		KeyboardHeight:  keyboardHeight,
		StartX:          startX,
		TextInputY:      textInputY,
		KeyboardStartY:  keyboardStartY,
		TextInputHeight: textInputHeight,
	}
}

// KeyboardRect returns the main keyboard area rectangle.
func (d KeyboardDimensions) KeyboardRect() image.Rectangle {
	return image.Rect(d.StartX, d.KeyboardStartY, d.StartX+d.KeyboardWidth, d.KeyboardStartY+d.KeyboardHeight)
}

// TextInputRect returns the text input area rectangle.
func (d KeyboardDimensions) TextInputRect() image.Rectangle {
	return image.Rect(d.StartX, d.TextInputY, d.StartX+d.KeyboardWidth, d.TextInputY+d.TextInputHeight)
}

// KeySizes holds the calculated sizes for different key types.
type KeySizes struct {
	KeyWidth       int
	KeyHeight      int
	KeySpacing     int
	BackspaceWidth int
	ShiftWidth     int
	SymbolWidth    int
	EnterWidth     int
	SpaceWidth     int
}

// CalculateKeySizes computes key sizes for QWERTY-style layouts.
// numRows is the number of key rows in the layout.
func CalculateKeySizes(dims KeyboardDimensions, numRows int) KeySizes {
	keyWidth := dims.KeyboardWidth / 12
	keyHeight := dims.KeyboardHeight / numRows
	keySpacing := 2

	return KeySizes{
		KeyWidth:       keyWidth,
		KeyHeight:      keyHeight - keySpacing,
		KeySpacing:     keySpacing,
		BackspaceWidth: keyWidth + keyWidth/2,
		ShiftWidth:     keyWidth + keyWidth/2,
		SymbolWidth:    keyWidth + keyWidth/2,
		EnterWidth:     keyWidth + keyWidth/2,
		SpaceWidth:     keyWidth * 6,
	}
}

// MaxRowWidth finds the maximum width among a slice of row widths.
func MaxRowWidth(widths ...int) int {
	max := widths[0]
	for _, w := range widths[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// CalculateRowWidth computes the width of a row given its components.
func CalculateRowWidth(numKeys int, keyWidth, keySpacing int, leftWidth, rightWidth int) int {
	width := numKeys*keyWidth + (numKeys-1)*keySpacing
	if leftWidth > 0 {
		width += leftWidth + keySpacing
	}
	if rightWidth > 0 {
		width += rightWidth + keySpacing
	}
	return width
}

// LayoutRow positions keys for a single row.
// Returns the next X position after this row.
func LayoutRow(
	keyRects []image.Rectangle,
	indices []int,
	x, y int,
	keyWidth, keyHeight, keySpacing int,
) int {
	for _, idx := range indices {
		if idx >= 0 && idx < len(keyRects) {
			keyRects[idx] = image.Rect(x, y, x+keyWidth, y+keyHeight)
		}
		x += keyWidth + keySpacing
	}
	return x
}
