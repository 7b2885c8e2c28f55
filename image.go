package snap

import (
	"image"
	"image/color"
)

// Format identifies the native serialization form of an image.
type Format int

const (
	// FormatP3 is the ASCII PPM variant.
	FormatP3 Format = iota
	// FormatP6 is the binary PPM variant.
	FormatP6
)

// String implements the fmt.Stringer interface.
func (f Format) String() string {
	switch f {
	case FormatP3:
		return "P3"
	case FormatP6:
		return "P6"
	}
	return "unknown"
}

// Pixel is the RGB triple read at one (row, col) position across the
// three channels of an image.
type Pixel struct {
	R, G, B int
}

// squaredDifference returns the squared RGB Euclidean distance between two pixels.
func (p Pixel) squaredDifference(q Pixel) int {
	dr := p.R - q.R
	dg := p.G - q.G
	db := p.B - q.B
	return dr*dr + dg*dg + db*db
}

// Image is a 2D RGB raster held as three equal-shaped channel matrices.
// Keeping the channels separate (instead of one interleaved buffer) lets
// every geometric transform reuse the matrix primitives per channel.
// All three channels share identical width and height at every observable
// instant; the validated constructors enforce this.
//
// An Image is mutated in place by every transform and is not safe for
// concurrent use; callers must serialize all operations on an instance.
type Image struct {
	width        int
	height       int
	maxIntensity int
	format       Format
	red          *Matrix[int]
	green        *Matrix[int]
	blue         *Matrix[int]
}

// NewImage creates a width x height image with all channels set to zero.
func NewImage(width, height, maxIntensity int, format Format) *Image {
	return &Image{
		width:        width,
		height:       height,
		maxIntensity: maxIntensity,
		format:       format,
		red:          NewMatrix[int](width, height),
		green:        NewMatrix[int](width, height),
		blue:         NewMatrix[int](width, height),
	}
}

// ImageFromChannels assembles an image from three channel matrices.
// It returns ErrShapeMismatch unless all three share the same width and height.
func ImageFromChannels(red, green, blue *Matrix[int], maxIntensity int, format Format) (*Image, error) {
	if red.Width() != green.Width() || red.Width() != blue.Width() ||
		red.Height() != green.Height() || red.Height() != blue.Height() {
		return nil, ErrShapeMismatch
	}
	return &Image{
		width:        red.Width(),
		height:       red.Height(),
		maxIntensity: maxIntensity,
		format:       format,
		red:          red,
		green:        green,
		blue:         blue,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// MaxIntensity returns the largest channel sample value the image may hold.
func (img *Image) MaxIntensity() int { return img.maxIntensity }

// Format returns the native serialization form the image was decoded with.
func (img *Image) Format() Format { return img.format }

// SetFormat changes the native serialization form used by Encode.
func (img *Image) SetFormat(f Format) { img.format = f }

// GetPixel returns the pixel at (row, col).
// The second return value is false when the position is out of range.
func (img *Image) GetPixel(row, col int) (Pixel, bool) {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		return Pixel{}, false
	}
	return Pixel{
		R: img.red.At(row, col),
		G: img.green.At(row, col),
		B: img.blue.At(row, col),
	}, true
}

// SetPixel writes the pixel at (row, col) across all three channels and
// reports whether the position was in range. The write is atomic with
// respect to the caller: no partially updated pixel is ever observable.
func (img *Image) SetPixel(row, col int, px Pixel) bool {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		return false
	}
	img.red.SetAt(row, col, px.R)
	img.green.SetAt(row, col, px.G)
	img.blue.SetAt(row, col, px.B)
	return true
}

// pixelAt reads the pixel at (row, col) without bounds checking.
func (img *Image) pixelAt(row, col int) Pixel {
	return Pixel{
		R: img.red.At(row, col),
		G: img.green.At(row, col),
		B: img.blue.At(row, col),
	}
}

// Fill overwrites every pixel of the image with px.
func (img *Image) Fill(px Pixel) {
	img.red.Fill(px.R)
	img.green.Fill(px.G)
	img.blue.Fill(px.B)
}

// commit swaps in three replacement channels as one unit, keeping the
// shared-shape invariant even when a transform is abandoned halfway.
func (img *Image) commit(red, green, blue *Matrix[int]) {
	img.red, img.green, img.blue = red, green, blue
	img.width = red.Width()
	img.height = red.Height()
}

// ToNRGBA converts the image to an *image.NRGBA with fully opaque alpha.
// Channel samples are rescaled to the 8 bit range when the image max
// intensity differs from 255.
func (img *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.pixelAt(row, col)
			r, g, b := px.R, px.G, px.B
			if img.maxIntensity != 255 && img.maxIntensity > 0 {
				r = r * 255 / img.maxIntensity
				g = g * 255 / img.maxIntensity
				b = b * 255 / img.maxIntensity
			}
			off := dst.PixOffset(col, row)
			dst.Pix[off+0] = uint8(r)
			dst.Pix[off+1] = uint8(g)
			dst.Pix[off+2] = uint8(b)
			dst.Pix[off+3] = 0xff
		}
	}
	return dst
}

// FromNRGBA wraps the RGB samples of an *image.NRGBA into a three channel image.
func FromNRGBA(src *image.NRGBA) *Image {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	img := NewImage(width, height, 255, FormatP6)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			off := src.PixOffset(col, row)
			img.red.SetAt(row, col, int(src.Pix[off+0]))
			img.green.SetAt(row, col, int(src.Pix[off+1]))
			img.blue.SetAt(row, col, int(src.Pix[off+2]))
		}
	}
	return img
}

// FromImage converts any image type into a three channel image.
func FromImage(src image.Image) *Image {
	return FromNRGBA(imgToNRGBA(src))
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}
