package constants

import "image/color"

// Palette shared by every screen and overlay.
var (
	ColorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBlack     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorYellow    = color.RGBA{R: 237, G: 247, B: 157, A: 255}
	ColorGrey      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorMaskBlack = color.RGBA{R: 0, G: 0, B: 0, A: 190}
	ColorDarkBlue  = color.RGBA{R: 15, G: 22, B: 89, A: 255}
	ColorLightBlue = color.RGBA{R: 35, G: 69, B: 167, A: 255}
	ColorHighBlue  = color.RGBA{R: 48, G: 65, B: 106, A: 255}
)
