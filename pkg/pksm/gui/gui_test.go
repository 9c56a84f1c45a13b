package gui

import (
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

func TestTextAlignment(t *testing.T) {
	rec := NewRecorder()
	g := New(rec)
	g.Target(constants.DisplayBottom)

	// FontSize12 is 15px high, so each rune measures 7px.
	g.Text("abcd", 160, 100, constants.FontSize12, constants.ColorWhite, constants.TextPosCenter, constants.TextPosTop)
	g.Text("ab", 100, 100, constants.FontSize12, constants.ColorWhite, constants.TextPosRight, constants.TextPosTop)

	ops := rec.Ops()
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	if ops[0].X != 160-14 || ops[0].Display != constants.DisplayBottom {
		t.Fatalf("expected centered text at x=146 on the bottom display, got %v", ops[0])
	}
	if ops[1].X != 100-14 {
		t.Fatalf("expected right-aligned text at x=86, got %v", ops[1])
	}
}

func TestMultilineText(t *testing.T) {
	rec := NewRecorder()
	g := New(rec)

	g.Text("one\ntwo", 0, 100, constants.FontSize12, constants.ColorWhite, constants.TextPosLeft, constants.TextPosMiddle)

	ops := rec.Ops()
	if len(ops) != 2 {
		t.Fatalf("expected one op per line, got %d", len(ops))
	}
	if ops[0].Y != 100-15 || ops[1].Y != 100 {
		t.Fatalf("expected lines at y=85 and y=100, got %d and %d", ops[0].Y, ops[1].Y)
	}
}

func TestDimCoversDisplay(t *testing.T) {
	rec := NewRecorder()
	g := New(rec)

	g.Target(constants.DisplayTop)
	g.Dim()
	g.Target(constants.DisplayBottom)
	g.Dim()

	ops := rec.Ops()
	if ops[0].W != constants.TopWidth || ops[1].W != constants.BottomWidth {
		t.Fatalf("expected full-width masks, got %v and %v", ops[0], ops[1])
	}
	if ops[0].Color != constants.ColorMaskBlack {
		t.Fatalf("expected translucent mask color")
	}
}

func TestHighlightOutline(t *testing.T) {
	rec := NewRecorder()
	g := New(rec)

	g.Highlight(2, 12, 198, 11, constants.ColorYellow)

	ops := rec.Ops()
	if len(ops) != 5 {
		t.Fatalf("expected mask plus four edges, got %d ops", len(ops))
	}
	bottom := ops[3]
	if bottom.Y != 22 || bottom.H != 1 || bottom.W != 198 {
		t.Fatalf("unexpected bottom edge %v", bottom)
	}
	right := ops[4]
	if right.X != 199 || right.W != 1 {
		t.Fatalf("unexpected right edge %v", right)
	}
}

func TestEllipsize(t *testing.T) {
	g := New(NewRecorder())

	if got := g.Ellipsize("short", constants.FontSize12, 100); got != "short" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	// 7px per rune: 10 runes fit in 70px.
	if got := g.Ellipsize("abcdefghijklmnop", constants.FontSize12, 70); got != "abcdefg..." {
		t.Fatalf("expected truncated text, got %q", got)
	}
}

func TestTileSprite(t *testing.T) {
	rec := NewRecorder()
	g := New(rec)
	g.Target(constants.DisplayBottom)

	g.TileSprite(constants.SpriteBgStripeBottom, 80)

	// 320/80 columns by 240/80 rows.
	if n := len(rec.Ops()); n != 12 {
		t.Fatalf("expected 12 tiles, got %d", n)
	}
}
