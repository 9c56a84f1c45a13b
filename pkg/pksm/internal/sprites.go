package internal

import (
	"embed"
	"fmt"
	"image"
	"math"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed sprites/*.svg
var spriteFS embed.FS

// RasterizeSprite renders the sprite sheet entry id at its natural size,
// taken from the SVG view box.
func RasterizeSprite(id constants.SpriteID) (*image.RGBA, error) {
	return RasterizeSpriteScaled(id, 1)
}

// RasterizeSpriteScaled renders the entry id at scale times its natural
// size. The SDL backend uses this for scaled dev-mode windows.
func RasterizeSpriteScaled(id constants.SpriteID, scale float64) (*image.RGBA, error) {
	name, ok := constants.SpriteNames[id]
	if !ok {
		return nil, fmt.Errorf("unknown sprite %d", id)
	}

	f, err := spriteFS.Open("sprites/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", name, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("parse sprite %s: %w", name, err)
	}

	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite %s has an empty view box", name)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return img, nil
}

// SpriteSize returns the natural size of a sprite without rasterizing it.
func SpriteSize(id constants.SpriteID) (int, int, error) {
	name, ok := constants.SpriteNames[id]
	if !ok {
		return 0, 0, fmt.Errorf("unknown sprite %d", id)
	}
	f, err := spriteFS.Open("sprites/" + name + ".svg")
	if err != nil {
		return 0, 0, fmt.Errorf("open sprite %s: %w", name, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return 0, 0, fmt.Errorf("parse sprite %s: %w", name, err)
	}
	return int(math.Ceil(icon.ViewBox.W)), int(math.Ceil(icon.ViewBox.H)), nil
}
