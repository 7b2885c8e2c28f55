package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFace_NewFaceDetectorRejectsGarbageCascade(t *testing.T) {
	assert := assert.New(t)

	_, err := NewFaceDetector([]byte{0x00, 0x01, 0x02})
	assert.Error(err)
}

func TestFace_LoadFaceDetectorMissingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadFaceDetector("no/such/cascade.bin")
	assert.Error(err)
}

func TestFace_GrayscaleLuminance(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(2, 1, 255, FormatP6)
	img.SetPixel(0, 0, Pixel{R: 0, G: 0, B: 0})
	img.SetPixel(0, 1, Pixel{R: 255, G: 0, B: 0})

	gray := img.grayscale()
	assert.Len(gray, 2)
	assert.Equal(uint8(0), gray[0])
	assert.Equal(uint8(76), gray[1])
}

func TestFace_GrayscaleRescalesNarrowIntensityRange(t *testing.T) {
	assert := assert.New(t)

	// A red sample at the top of a 100 intensity range maps to the same
	// luminance as full red in the 8 bit range.
	img := NewImage(1, 1, 100, FormatP3)
	img.SetPixel(0, 0, Pixel{R: 100, G: 0, B: 0})

	gray := img.grayscale()
	assert.Equal(uint8(76), gray[0])
}
