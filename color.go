package snap

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ScaleRGB multiplies every pixel's channel values by the given scalars.
// Scalars are clamped to [0, 1], so the operation only darkens; the
// products truncate toward zero.
func (img *Image) ScaleRGB(rScale, gScale, bScale float64) {
	rScale = clampUnit(rScale)
	gScale = clampUnit(gScale)
	bScale = clampUnit(bScale)

	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.pixelAt(row, col)
			img.SetPixel(row, col, Pixel{
				R: int(float64(px.R) * rScale),
				G: int(float64(px.G) * gScale),
				B: int(float64(px.B) * bScale),
			})
		}
	}
}

// HueShift rotates the hue of every pixel by the given degrees, wrapping
// around the color wheel. Conversion goes through HSL space.
func (img *Image) HueShift(degrees float64) {
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.pixelAt(row, col)
			c := colorful.Color{
				R: float64(px.R) / 255.0,
				G: float64(px.G) / 255.0,
				B: float64(px.B) / 255.0,
			}
			h, s, l := c.Hsl()

			h = math.Mod(h+degrees, 360.0)
			if h < 0 {
				h += 360.0
			}

			r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
			img.SetPixel(row, col, Pixel{R: int(r), G: int(g), B: int(b)})
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
