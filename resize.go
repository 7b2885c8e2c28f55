package snap

import "errors"

// ErrMissingCropMethod is returned by Resize when an axis must shrink and
// no crop method was supplied for it.
var ErrMissingCropMethod = errors.New("snap: shrinking axis requires a crop method")

// Resize brings the image to targetWidth x targetHeight, composing scale
// and crop independently per axis: a growing axis is scaled with the given
// method, a shrinking axis is cropped with its axis crop method. The width
// axis is handled first. The empty crop method means "not supplied".
func (img *Image) Resize(targetWidth, targetHeight int, method ScaleMethod, cropX, cropY CropMethod) error {
	if targetWidth > img.width {
		img.Scale(targetWidth, img.height, method)
	} else if targetWidth < img.width {
		if cropX == "" {
			return ErrMissingCropMethod
		}
		if err := img.CropWidth(targetWidth, cropX); err != nil {
			return err
		}
	}

	if targetHeight > img.height {
		img.Scale(img.width, targetHeight, method)
	} else if targetHeight < img.height {
		if cropY == "" {
			return ErrMissingCropMethod
		}
		if err := img.CropHeight(targetHeight, cropY); err != nil {
			return err
		}
	}
	return nil
}
