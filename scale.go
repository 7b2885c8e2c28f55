package snap

import (
	"math"

	"github.com/pkg/errors"
)

// ScaleMethod selects the resampling filter used by Scale.
type ScaleMethod string

const (
	// Nearest picks the source pixel at floor(dst*srcDim/dstDim).
	Nearest ScaleMethod = "nearest"
	// Bilinear interpolates the four neighboring source samples.
	Bilinear ScaleMethod = "bilinear"
)

// ParseScaleMethod maps a CLI token to a scale method.
func ParseScaleMethod(s string) (ScaleMethod, error) {
	switch s {
	case "nearest", "linear":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	}
	return "", errors.Errorf("unknown scale method %q", s)
}

// Scale resamples the image to newWidth x newHeight using the given method.
// Zero-sized source or target dimensions make it a no-op.
func (img *Image) Scale(newWidth, newHeight int, method ScaleMethod) {
	if img.width == 0 || img.height == 0 || newWidth == 0 || newHeight == 0 {
		return
	}
	switch method {
	case Bilinear:
		img.bilinearScale(newWidth, newHeight)
	default:
		img.nearestScale(newWidth, newHeight)
	}
}

func (img *Image) nearestScale(newWidth, newHeight int) {
	newRed := NewMatrix[int](newWidth, newHeight)
	newGreen := NewMatrix[int](newWidth, newHeight)
	newBlue := NewMatrix[int](newWidth, newHeight)

	for newRow := 0; newRow < newHeight; newRow++ {
		for newCol := 0; newCol < newWidth; newCol++ {
			origRow := newRow * img.height / newHeight
			origCol := newCol * img.width / newWidth

			px := img.pixelAt(origRow, origCol)
			newRed.SetAt(newRow, newCol, px.R)
			newGreen.SetAt(newRow, newCol, px.G)
			newBlue.SetAt(newRow, newCol, px.B)
		}
	}
	img.commit(newRed, newGreen, newBlue)
}

func (img *Image) bilinearScale(newWidth, newHeight int) {
	newRed := NewMatrix[int](newWidth, newHeight)
	newGreen := NewMatrix[int](newWidth, newHeight)
	newBlue := NewMatrix[int](newWidth, newHeight)

	interpolate := func(a, b int, t float64) int {
		return int(math.Round(float64(a)*(1.0-t) + float64(b)*t))
	}

	for newY := 0; newY < newHeight; newY++ {
		for newX := 0; newX < newWidth; newX++ {
			// Map the target pixel back into source image space.
			srcX := float64(newX) * float64(img.width) / float64(newWidth)
			srcY := float64(newY) * float64(img.height) / float64(newHeight)

			x0 := int(math.Floor(srcX))
			y0 := int(math.Floor(srcY))

			// At the last row/column the second sample clamps to the
			// same index as the first, duplicating the edge.
			x1 := x0 + 1
			if x1 > img.width-1 {
				x1 = img.width - 1
			}
			y1 := y0 + 1
			if y1 > img.height-1 {
				y1 = img.height - 1
			}

			dx := srcX - float64(x0)
			dy := srcY - float64(y0)

			p00 := img.pixelAt(y0, x0)
			p10 := img.pixelAt(y0, x1)
			p01 := img.pixelAt(y1, x0)
			p11 := img.pixelAt(y1, x1)

			r := interpolate(interpolate(p00.R, p10.R, dx), interpolate(p01.R, p11.R, dx), dy)
			g := interpolate(interpolate(p00.G, p10.G, dx), interpolate(p01.G, p11.G, dx), dy)
			b := interpolate(interpolate(p00.B, p10.B, dx), interpolate(p01.B, p11.B, dx), dy)

			newRed.SetAt(newY, newX, clampChannel(r, img.maxIntensity))
			newGreen.SetAt(newY, newX, clampChannel(g, img.maxIntensity))
			newBlue.SetAt(newY, newX, clampChannel(b, img.maxIntensity))
		}
	}
	img.commit(newRed, newGreen, newBlue)
}

func clampChannel(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
