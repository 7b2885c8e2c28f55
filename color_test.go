package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_ScaleRGBTruncatesProducts(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(2, 2, Pixel{R: 101, G: 50, B: 255})
	img.ScaleRGB(0.5, 0.1, 1.0)

	px, _ := img.GetPixel(0, 0)
	assert.Equal(Pixel{R: 50, G: 5, B: 255}, px)
}

func TestColor_ScaleRGBClampsScalarsToUnitRange(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(1, 1, Pixel{R: 100, G: 100, B: 100})
	img.ScaleRGB(2.0, -1.0, 1.0)

	px, _ := img.GetPixel(0, 0)
	assert.Equal(Pixel{R: 100, G: 0, B: 100}, px)
}

func TestColor_HueShiftRotatesRedToGreen(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(1, 1, Pixel{R: 255, G: 0, B: 0})
	img.HueShift(120)

	px, _ := img.GetPixel(0, 0)
	assert.Equal(Pixel{R: 0, G: 255, B: 0}, px)
}

func TestColor_HueShiftFullTurnIsIdentity(t *testing.T) {
	img := uniformImage(2, 2, Pixel{R: 200, G: 64, B: 32})
	snapshot := clone(img)

	img.HueShift(360)
	assertSamePixels(t, snapshot, img)
}

func TestColor_HueShiftNegativeDegreesWrapAround(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(1, 1, Pixel{R: 255, G: 0, B: 0})
	img.HueShift(-240)

	px, _ := img.GetPixel(0, 0)
	assert.Equal(Pixel{R: 0, G: 255, B: 0}, px)
}
