// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colors used for the pre-rendered map background.
type MapColors struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	WallColor       color.RGBA
	GridColor       color.RGBA
	StrokeWidth     float32
}

// HealthBarColors holds the two layers of an entity health bar.
type HealthBarColors struct {
	Back  color.RGBA
	Front color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales the alpha of c by k in [0, 1].
func FadeColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
