package pksm

import (
	"image"
	"unicode/utf8"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/filter"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

type key struct {
	Rect        image.Rectangle
	LowerValue  string
	UpperValue  string
	SymbolValue string
}

type keyboardState int

const (
	lowerCase keyboardState = iota
	upperCase
	symbolsMode
)

type specialKey int

const (
	specialNone specialKey = iota
	specialBackspace
	specialEnter
	specialSpace
	specialShift
	specialSymbol
)

// keyLayout rows hold either an index into the key slice or a specialKey.
type keyLayout struct {
	rows [][]any
}

func createKeyLayout() *keyLayout {
	return &keyLayout{
		rows: [][]any{
			{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, specialBackspace},
			{10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
			{20, 21, 22, 23, 24, 25, 26, 27, 28, specialEnter},
			{specialShift, 29, 30, 31, 32, 33, 34, 35, specialSymbol},
			{specialSpace},
		},
	}
}

// populateLetterKeys fills keys with letters at offset. If symbols is nil
// the letter itself is the symbol value.
func populateLetterKeys(keys []key, letters string, offset int, symbols []string) {
	for i, char := range letters {
		symbolVal := string(char)
		if symbols != nil && i < len(symbols) {
			symbolVal = symbols[i]
		}
		keys[offset+i] = key{
			LowerValue:  string(char),
			UpperValue:  string(char - 32),
			SymbolValue: symbolVal,
		}
	}
}

func populateCharKeys(keys []key, chars, symbols []string, offset int) {
	for i, char := range chars {
		symbolVal := char
		if i < len(symbols) {
			symbolVal = symbols[i]
		}
		keys[offset+i] = key{LowerValue: char, UpperValue: char, SymbolValue: symbolVal}
	}
}

func createKeys() []key {
	keys := make([]key, 36)

	numbers := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}
	numberSymbols := []string{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")"}
	populateCharKeys(keys, numbers, numberSymbols, 0)

	populateLetterKeys(keys, "qwertyuiop", 10, []string{"`", "~", "[", "]", "\\", "|", "{", "}", ";", ":"})
	populateLetterKeys(keys, "asdfghjkl", 20, []string{"'", "\"", "<", ">", "?", "/", "+", "=", "_"})
	populateLetterKeys(keys, "zxcvbnm", 29, []string{",", ".", "-", "é", "ä", "ö", "ü"})

	return keys
}

// KeyboardSettings configures the search keyboard.
type KeyboardSettings struct {
	Hint        string // Shown in the text field while it is empty
	InitialText string
	// MaxLength limits the text in runes. Zero means filter.MaxQueryLength.
	MaxLength int
	// OnDone receives the result after the keyboard has removed itself.
	OnDone func(KeyboardResult)
}

// SearchKeyboard is an on-screen keyboard drawn on the bottom display.
//
// D-pad moves between keys (with repeat), A types the highlighted key,
// B deletes, X types a space, Select toggles shift, L and R move the text
// cursor, Start confirms and Y cancels. Keys can also be tapped.
type SearchKeyboard struct {
	handle   *router.Overlay
	loc      *Localizer
	settings KeyboardSettings

	keys         []key
	layout       *keyLayout
	state        keyboardState
	shiftPressed bool
	symbolMode   bool

	backspaceRect image.Rectangle
	enterRect     image.Rectangle
	spaceRect     image.Rectangle
	shiftRect     image.Rectangle
	symbolRect    image.Rectangle
	textInputRect image.Rectangle

	selectedKey     int
	selectedSpecial specialKey

	text   []rune
	cursor int
	frames int
}

// ShowKeyboard pushes the keyboard above everything on screen.
func ShowKeyboard(screen *router.Screen, loc *Localizer, settings KeyboardSettings) *SearchKeyboard {
	if settings.MaxLength <= 0 {
		settings.MaxLength = filter.MaxQueryLength
	}

	var kb *SearchKeyboard
	screen.PushOverlay(func(o *router.Overlay) router.Layer {
		kb = newSearchKeyboard(o, loc, settings)
		return kb
	})
	return kb
}

func newSearchKeyboard(o *router.Overlay, loc *Localizer, settings KeyboardSettings) *SearchKeyboard {
	kb := &SearchKeyboard{
		handle:   o,
		loc:      loc,
		settings: settings,
		keys:     createKeys(),
		layout:   createKeyLayout(),
	}
	kb.setupRects(constants.BottomWidth, constants.ScreenHeight)

	initial := []rune(settings.InitialText)
	if len(initial) > settings.MaxLength {
		initial = initial[:settings.MaxLength]
	}
	kb.text = initial
	kb.cursor = len(initial)
	return kb
}

func (kb *SearchKeyboard) setupRects(width, height int) {
	dims := internal.CalculateKeyboardDimensions(width, height)
	kb.textInputRect = dims.TextInputRect()

	sizes := internal.CalculateKeySizes(dims, 5)
	keyWidth := sizes.KeyWidth
	keyHeight := sizes.KeyHeight
	keySpacing := sizes.KeySpacing

	row1Width := internal.CalculateRowWidth(10, keyWidth, keySpacing, 0, sizes.BackspaceWidth)
	row2Width := internal.CalculateRowWidth(10, keyWidth, keySpacing, 0, 0)
	row3Width := internal.CalculateRowWidth(9, keyWidth, keySpacing, 0, sizes.EnterWidth)
	row4Width := internal.CalculateRowWidth(7, keyWidth, keySpacing, sizes.ShiftWidth, sizes.SymbolWidth)
	row5Width := sizes.SpaceWidth

	maxRowWidth := internal.MaxRowWidth(row1Width, row2Width, row3Width, row4Width, row5Width)
	leftMargin := dims.StartX + (dims.KeyboardWidth-maxRowWidth)/2
	y := dims.KeyboardStartY + keySpacing

	rects := make([]image.Rectangle, len(kb.keys))

	// Numbers + backspace
	x := internal.LayoutRow(rects, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, leftMargin, y, keyWidth, keyHeight, keySpacing)
	kb.backspaceRect = image.Rect(x, y, x+sizes.BackspaceWidth, y+keyHeight)

	y += keyHeight + keySpacing
	internal.LayoutRow(rects, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, leftMargin+(maxRowWidth-row2Width)/2, y, keyWidth, keyHeight, keySpacing)

	// ASDF + enter
	y += keyHeight + keySpacing
	x = internal.LayoutRow(rects, []int{20, 21, 22, 23, 24, 25, 26, 27, 28}, leftMargin+(maxRowWidth-row3Width)/2, y, keyWidth, keyHeight, keySpacing)
	kb.enterRect = image.Rect(x, y, x+sizes.EnterWidth, y+keyHeight)

	// Shift + ZXCV + symbol
	y += keyHeight + keySpacing
	x = leftMargin + (maxRowWidth-row4Width)/2
	kb.shiftRect = image.Rect(x, y, x+sizes.ShiftWidth, y+keyHeight)
	x = internal.LayoutRow(rects, []int{29, 30, 31, 32, 33, 34, 35}, x+sizes.ShiftWidth+keySpacing, y, keyWidth, keyHeight, keySpacing)
	kb.symbolRect = image.Rect(x, y, x+sizes.SymbolWidth, y+keyHeight)

	y += keyHeight + keySpacing
	x = leftMargin + (maxRowWidth-row5Width)/2
	kb.spaceRect = image.Rect(x, y, x+sizes.SpaceWidth, y+keyHeight)

	for i := range kb.keys {
		kb.keys[i].Rect = rects[i]
	}
}

// Text returns the text typed so far.
func (kb *SearchKeyboard) Text() string {
	return string(kb.text)
}

// Cursor returns the text cursor position in runes.
func (kb *SearchKeyboard) Cursor() int {
	return kb.cursor
}

func (kb *SearchKeyboard) Update(in *input.Snapshot) {
	kb.frames++

	if in.Pressed(constants.KeyTouch) && in.Touch != nil {
		if kb.handleTouch(image.Pt(in.Touch.X, in.Touch.Y)) {
			return
		}
	}

	switch {
	case in.Repeated(constants.KeyDUp):
		kb.navigate(constants.KeyDUp)
	case in.Repeated(constants.KeyDDown):
		kb.navigate(constants.KeyDDown)
	case in.Repeated(constants.KeyDLeft):
		kb.navigate(constants.KeyDLeft)
	case in.Repeated(constants.KeyDRight):
		kb.navigate(constants.KeyDRight)
	case in.Repeated(constants.KeyL):
		kb.moveCursor(-1)
	case in.Repeated(constants.KeyR):
		kb.moveCursor(1)
	}

	switch {
	case in.Pressed(constants.KeyStart):
		kb.confirm()
	case in.Pressed(constants.KeyY):
		kb.cancel()
	case in.Pressed(constants.KeyA):
		kb.processSelection()
	case in.Pressed(constants.KeyB):
		kb.backspace()
	case in.Pressed(constants.KeyX):
		kb.insertText(" ")
	case in.Pressed(constants.KeySelect):
		kb.toggleShift()
	}
}

// handleTouch types the key under p. It reports whether the keyboard
// closed.
func (kb *SearchKeyboard) handleTouch(p image.Point) bool {
	for i, k := range kb.keys {
		if p.In(k.Rect) {
			kb.selectedKey, kb.selectedSpecial = i, specialNone
			kb.insertText(kb.keyValue(i))
			return false
		}
	}

	for special, rect := range map[specialKey]image.Rectangle{
		specialBackspace: kb.backspaceRect,
		specialEnter:     kb.enterRect,
		specialSpace:     kb.spaceRect,
		specialShift:     kb.shiftRect,
		specialSymbol:    kb.symbolRect,
	} {
		if p.In(rect) {
			kb.selectedKey, kb.selectedSpecial = -1, special
			return kb.handleSpecialKey()
		}
	}
	return false
}

func (kb *SearchKeyboard) navigate(dir constants.Key) {
	row, col := kb.findCurrentPosition()
	rows := kb.layout.rows

	switch dir {
	case constants.KeyDUp:
		row = (row - 1 + len(rows)) % len(rows)
		col = min(col, len(rows[row])-1)
	case constants.KeyDDown:
		row = (row + 1) % len(rows)
		col = min(col, len(rows[row])-1)
	case constants.KeyDLeft:
		col = (col - 1 + len(rows[row])) % len(rows[row])
	case constants.KeyDRight:
		col = (col + 1) % len(rows[row])
	}

	switch v := rows[row][col].(type) {
	case int:
		kb.selectedKey, kb.selectedSpecial = v, specialNone
	case specialKey:
		kb.selectedKey, kb.selectedSpecial = -1, v
	}
}

func (kb *SearchKeyboard) findCurrentPosition() (int, int) {
	for r, row := range kb.layout.rows {
		for c, slot := range row {
			switch v := slot.(type) {
			case int:
				if kb.selectedSpecial == specialNone && v == kb.selectedKey {
					return r, c
				}
			case specialKey:
				if v == kb.selectedSpecial {
					return r, c
				}
			}
		}
	}
	return 0, 0
}

func (kb *SearchKeyboard) processSelection() {
	if kb.selectedSpecial == specialNone {
		kb.insertText(kb.keyValue(kb.selectedKey))
		return
	}
	kb.handleSpecialKey()
}

// handleSpecialKey runs the highlighted special key and reports whether
// the keyboard closed.
func (kb *SearchKeyboard) handleSpecialKey() bool {
	switch kb.selectedSpecial {
	case specialBackspace:
		kb.backspace()
	case specialEnter:
		kb.confirm()
		return true
	case specialSpace:
		kb.insertText(" ")
	case specialShift:
		kb.toggleShift()
	case specialSymbol:
		kb.toggleSymbols()
	}
	return false
}

func (kb *SearchKeyboard) keyValue(index int) string {
	k := kb.keys[index]
	switch {
	case kb.state == symbolsMode:
		return k.SymbolValue
	case index < 10 && kb.shiftPressed:
		return k.SymbolValue
	case kb.state == upperCase:
		return k.UpperValue
	}
	return k.LowerValue
}

func (kb *SearchKeyboard) insertText(s string) {
	if len(kb.text)+utf8.RuneCountInString(s) > kb.settings.MaxLength {
		return
	}
	ins := []rune(s)
	text := make([]rune, 0, len(kb.text)+len(ins))
	text = append(text, kb.text[:kb.cursor]...)
	text = append(text, ins...)
	text = append(text, kb.text[kb.cursor:]...)
	kb.text = text
	kb.cursor += len(ins)
}

func (kb *SearchKeyboard) backspace() {
	if kb.cursor == 0 {
		return
	}
	kb.text = append(kb.text[:kb.cursor-1], kb.text[kb.cursor:]...)
	kb.cursor--
}

func (kb *SearchKeyboard) moveCursor(direction int) {
	if direction > 0 && kb.cursor < len(kb.text) {
		kb.cursor++
	} else if direction < 0 && kb.cursor > 0 {
		kb.cursor--
	}
}

func (kb *SearchKeyboard) toggleShift() {
	kb.shiftPressed = !kb.shiftPressed
	if kb.state == symbolsMode {
		return
	}
	if kb.shiftPressed {
		kb.state = upperCase
	} else {
		kb.state = lowerCase
	}
}

func (kb *SearchKeyboard) toggleSymbols() {
	kb.symbolMode = !kb.symbolMode
	switch {
	case kb.symbolMode:
		kb.state = symbolsMode
	case kb.shiftPressed:
		kb.state = upperCase
	default:
		kb.state = lowerCase
	}
}

func (kb *SearchKeyboard) confirm() {
	kb.finish(KeyboardResult{Text: string(kb.text)})
}

func (kb *SearchKeyboard) cancel() {
	kb.finish(KeyboardResult{Err: ErrCancelled})
}

func (kb *SearchKeyboard) finish(result KeyboardResult) {
	kb.handle.Remove()
	internal.GetInternalLogger().Debug("Keyboard closed", "text", result.Text, "cancelled", IsCancelled(result.Err))
	if kb.settings.OnDone != nil {
		kb.settings.OnDone(result)
	}
}

func (kb *SearchKeyboard) DrawTop(g *gui.Gui) {
	g.Dim()
	g.Text(kb.loc.T("KEYBOARD_INST"), constants.TopWidth/2, constants.ScreenHeight/2, constants.FontSize12, constants.ColorWhite, constants.TextPosCenter, constants.TextPosMiddle)
}

func (kb *SearchKeyboard) DrawBottom(g *gui.Gui) {
	g.SolidRect(0, 0, constants.BottomWidth, constants.ScreenHeight, constants.ColorDarkBlue)

	kb.drawTextInput(g)
	for i, k := range kb.keys {
		kb.drawKey(g, k.Rect, kb.keyValue(i), kb.selectedSpecial == specialNone && kb.selectedKey == i, false)
	}

	kb.drawKey(g, kb.backspaceRect, "<-", kb.selectedSpecial == specialBackspace, false)
	kb.drawKey(g, kb.enterRect, kb.loc.T("KEYBOARD_OK"), kb.selectedSpecial == specialEnter, false)
	kb.drawKey(g, kb.shiftRect, "^", kb.selectedSpecial == specialShift, kb.state == upperCase)
	kb.drawKey(g, kb.symbolRect, "#", kb.selectedSpecial == specialSymbol, kb.state == symbolsMode)
	kb.drawKey(g, kb.spaceRect, "", kb.selectedSpecial == specialSpace, false)
}

func (kb *SearchKeyboard) drawTextInput(g *gui.Gui) {
	r := kb.textInputRect
	g.SolidRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), constants.ColorMaskBlack)

	textY := r.Min.Y + r.Dy()/2
	if len(kb.text) == 0 {
		g.Text(kb.settings.Hint, r.Min.X+4, textY, constants.FontSize12, constants.ColorGrey, constants.TextPosLeft, constants.TextPosMiddle)
	} else {
		g.Text(string(kb.text), r.Min.X+4, textY, constants.FontSize12, constants.ColorWhite, constants.TextPosLeft, constants.TextPosMiddle)
	}

	// Cursor blinks at 1Hz.
	if (kb.frames/30)%2 == 0 {
		cx := r.Min.X + 4 + g.TextWidth(string(kb.text[:kb.cursor]), constants.FontSize12)
		g.SolidRect(cx, r.Min.Y+3, 1, r.Dy()-6, constants.ColorWhite)
	}
}

func (kb *SearchKeyboard) drawKey(g *gui.Gui, r image.Rectangle, label string, selected, active bool) {
	bg := constants.ColorLightBlue
	if active {
		bg = constants.ColorHighBlue
	}
	g.SolidRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), bg)
	if selected {
		g.Highlight(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), constants.ColorYellow)
	}
	if label != "" {
		g.Text(label, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2, constants.FontSize11, constants.ColorWhite, constants.TextPosCenter, constants.TextPosMiddle)
	}
}
