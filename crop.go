package snap

import "github.com/pkg/errors"

// CropMethod selects which edges Crop trims from.
type CropMethod string

const (
	CropLeft        CropMethod = "left"
	CropRight       CropMethod = "right"
	CropLeftRight   CropMethod = "left-right"
	CropTop         CropMethod = "top"
	CropBottom      CropMethod = "bottom"
	CropTopBottom   CropMethod = "top-bottom"
	CropLeftTop     CropMethod = "left-top"
	CropLeftBottom  CropMethod = "left-bottom"
	CropRightTop    CropMethod = "right-top"
	CropRightBottom CropMethod = "right-bottom"
	CropRect        CropMethod = "rectangular"
)

// ParseCropMethod maps a CLI token to a crop method.
func ParseCropMethod(s string) (CropMethod, error) {
	switch CropMethod(s) {
	case CropLeft, CropRight, CropLeftRight, CropTop, CropBottom, CropTopBottom,
		CropLeftTop, CropLeftBottom, CropRightTop, CropRightBottom, CropRect:
		return CropMethod(s), nil
	}
	return "", errors.Errorf("unknown crop method %q", s)
}

// Crop trims the image down to newWidth x newHeight with the given method.
// Pure reslicing, no resampling. centerX and centerY position the
// rectangular crop; pass a negative value to center that axis. Invalid or
// non-shrinking targets make it a no-op.
func (img *Image) Crop(newWidth, newHeight int, method CropMethod, centerX, centerY int) {
	if newWidth == 0 || newHeight == 0 || newWidth > img.width || newHeight > img.height {
		return
	}

	wDiff := img.width - newWidth
	hDiff := img.height - newHeight

	switch method {
	case CropLeft:
		img.cropLeft(newWidth)
	case CropRight:
		img.cropRight(newWidth)
	case CropLeftRight:
		rightTrim := wDiff - wDiff/2
		img.cropRight(img.width - rightTrim)
		img.cropLeft(newWidth)
	case CropTop:
		img.cropTop(newHeight)
	case CropBottom:
		img.cropBottom(newHeight)
	case CropTopBottom:
		bottomTrim := hDiff - hDiff/2
		img.cropBottom(img.height - bottomTrim)
		img.cropTop(newHeight)
	case CropLeftTop:
		img.cropLeft(newWidth)
		img.cropTop(newHeight)
	case CropLeftBottom:
		img.cropLeft(newWidth)
		img.cropBottom(newHeight)
	case CropRightTop:
		img.cropRight(newWidth)
		img.cropTop(newHeight)
	case CropRightBottom:
		img.cropRight(newWidth)
		img.cropBottom(newHeight)
	case CropRect:
		xOffset := centerX
		if xOffset < 0 {
			xOffset = (img.width - newWidth) / 2
		}
		yOffset := centerY
		if yOffset < 0 {
			yOffset = (img.height - newHeight) / 2
		}
		img.cropRect(newWidth, newHeight, xOffset, yOffset)
	}
}

// CropWidth trims only the horizontal axis with a width-appropriate method.
func (img *Image) CropWidth(newWidth int, method CropMethod) error {
	switch method {
	case CropLeft:
		img.cropLeft(newWidth)
	case CropRight:
		img.cropRight(newWidth)
	case CropLeftRight:
		totalTrim := img.width - newWidth
		if totalTrim < 0 {
			totalTrim = 0
		}
		img.cropRect(newWidth, img.height, totalTrim/2, 0)
	default:
		return errors.Errorf("crop method %q cannot trim the width", method)
	}
	return nil
}

// CropHeight trims only the vertical axis with a height-appropriate method.
func (img *Image) CropHeight(newHeight int, method CropMethod) error {
	switch method {
	case CropTop:
		img.cropTop(newHeight)
	case CropBottom:
		img.cropBottom(newHeight)
	case CropTopBottom:
		totalTrim := img.height - newHeight
		if totalTrim < 0 {
			totalTrim = 0
		}
		img.cropRect(img.width, newHeight, 0, totalTrim/2)
	default:
		return errors.Errorf("crop method %q cannot trim the height", method)
	}
	return nil
}

func (img *Image) cropLeft(newWidth int) {
	if newWidth >= img.width || newWidth == 0 {
		return
	}
	colsToTrim := img.width - newWidth

	for row := 0; row < img.height; row++ {
		for col := 0; col < newWidth; col++ {
			img.red.SetAt(row, col, img.red.At(row, col+colsToTrim))
			img.green.SetAt(row, col, img.green.At(row, col+colsToTrim))
			img.blue.SetAt(row, col, img.blue.At(row, col+colsToTrim))
		}
	}
	img.width = newWidth
	img.red.TrimWidth(newWidth)
	img.green.TrimWidth(newWidth)
	img.blue.TrimWidth(newWidth)
}

func (img *Image) cropRight(newWidth int) {
	if newWidth >= img.width || newWidth == 0 {
		return
	}
	img.width = newWidth
	img.red.TrimWidth(newWidth)
	img.green.TrimWidth(newWidth)
	img.blue.TrimWidth(newWidth)
}

func (img *Image) cropTop(newHeight int) {
	if newHeight >= img.height || newHeight == 0 {
		return
	}
	rowsToTrim := img.height - newHeight

	for row := 0; row < newHeight; row++ {
		for col := 0; col < img.width; col++ {
			img.red.SetAt(row, col, img.red.At(row+rowsToTrim, col))
			img.green.SetAt(row, col, img.green.At(row+rowsToTrim, col))
			img.blue.SetAt(row, col, img.blue.At(row+rowsToTrim, col))
		}
	}
	img.truncateHeight(newHeight)
}

func (img *Image) cropBottom(newHeight int) {
	if newHeight >= img.height || newHeight == 0 {
		return
	}
	img.truncateHeight(newHeight)
}

// truncateHeight drops all rows past newHeight. Row-major layout makes
// this a plain backing-slice truncation per channel.
func (img *Image) truncateHeight(newHeight int) {
	img.height = newHeight
	img.red.truncateRows(newHeight)
	img.green.truncateRows(newHeight)
	img.blue.truncateRows(newHeight)
}

func (img *Image) cropRect(newWidth, newHeight, xOffset, yOffset int) {
	newRed := NewMatrix[int](newWidth, newHeight)
	newGreen := NewMatrix[int](newWidth, newHeight)
	newBlue := NewMatrix[int](newWidth, newHeight)

	for row := 0; row < newHeight; row++ {
		for col := 0; col < newWidth; col++ {
			newRed.SetAt(row, col, img.red.At(yOffset+row, xOffset+col))
			newGreen.SetAt(row, col, img.green.At(yOffset+row, xOffset+col))
			newBlue.SetAt(row, col, img.blue.At(yOffset+row, xOffset+col))
		}
	}
	img.commit(newRed, newGreen, newBlue)
}
