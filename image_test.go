package snap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_FromChannelsShouldValidateShape(t *testing.T) {
	assert := assert.New(t)

	red := NewMatrix[int](2, 2)
	green := NewMatrix[int](2, 2)
	blue := NewMatrix[int](2, 3)

	_, err := ImageFromChannels(red, green, blue, 255, FormatP6)
	assert.ErrorIs(err, ErrShapeMismatch)

	blue = NewMatrix[int](2, 2)
	img, err := ImageFromChannels(red, green, blue, 255, FormatP6)
	assert.NoError(err)
	assert.Equal(2, img.Width())
	assert.Equal(2, img.Height())
}

func TestImage_PixelAccessShouldCheckBounds(t *testing.T) {
	assert := assert.New(t)
	img := NewImage(3, 2, 255, FormatP6)

	ok := img.SetPixel(1, 2, Pixel{R: 10, G: 20, B: 30})
	assert.True(ok)

	px, ok := img.GetPixel(1, 2)
	assert.True(ok)
	assert.Equal(Pixel{R: 10, G: 20, B: 30}, px)

	_, ok = img.GetPixel(2, 0)
	assert.False(ok)
	assert.False(img.SetPixel(0, 3, Pixel{}))
}

func TestImage_FillShouldCoverAllChannels(t *testing.T) {
	assert := assert.New(t)
	img := NewImage(2, 2, 255, FormatP6)
	img.Fill(Pixel{R: 1, G: 2, B: 3})

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			px, ok := img.GetPixel(row, col)
			assert.True(ok)
			assert.Equal(Pixel{R: 1, G: 2, B: 3}, px)
		}
	}
}

func TestImage_NRGBARoundTrip(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(2, 2, 255, FormatP6)
	img.SetPixel(0, 0, Pixel{R: 10, G: 20, B: 30})
	img.SetPixel(0, 1, Pixel{R: 40, G: 50, B: 60})
	img.SetPixel(1, 0, Pixel{R: 70, G: 80, B: 90})
	img.SetPixel(1, 1, Pixel{R: 255, G: 0, B: 127})

	back := FromNRGBA(img.ToNRGBA())
	assert.Equal(img.Width(), back.Width())
	assert.Equal(img.Height(), back.Height())
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			want, _ := img.GetPixel(row, col)
			got, _ := back.GetPixel(row, col)
			assert.Equal(want, got)
		}
	}
}

func TestImage_FromImageShouldNormalizeOrigin(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(2, 3, 5, 6))
	for y := 3; y < 6; y++ {
		for x := 2; x < 5; x++ {
			off := src.PixOffset(x, y)
			src.Pix[off+0] = uint8(x * 10)
			src.Pix[off+1] = uint8(y * 10)
			src.Pix[off+2] = 5
			src.Pix[off+3] = 0xff
		}
	}

	img := FromImage(src)
	assert.Equal(3, img.Width())
	assert.Equal(3, img.Height())

	px, ok := img.GetPixel(0, 0)
	assert.True(ok)
	assert.Equal(Pixel{R: 20, G: 30, B: 5}, px)
}
