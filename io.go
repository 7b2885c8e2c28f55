package snap

import (
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/tswan-dev/snap/utils"
)

// Open decodes an image file into the three channel representation.
// PPM files are decoded natively; every other supported extension is
// delegated to the imaging codec and wrapped into the same structure.
func Open(path string) (*Image, error) {
	if isPPM(path) {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "could not open the image file")
		}
		defer file.Close()
		return Decode(file)
	}

	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(ctype.(string), "image") {
		return nil, errors.Errorf("%s is not an image file", path)
	}

	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the image file")
	}
	return FromImage(src), nil
}

// Save encodes the image to a file, keyed by the output extension.
// PPM output uses the image's native serialization form; other formats go
// through the delegated codecs.
func Save(img *Image, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "could not create the output directory")
		}
	}

	if isPPM(path) {
		file, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "could not create the output file")
		}
		defer file.Close()
		return img.Encode(file)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		file, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "could not create the output file")
		}
		defer file.Close()
		return bmp.Encode(file, img.ToNRGBA())
	case ".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff":
		return imaging.Save(img.ToNRGBA(), path)
	}
	return errors.Errorf("unsupported image format %q", filepath.Ext(path))
}

// Convert decodes the input file and re-encodes it keyed by the output
// extension. No transform is applied.
func Convert(in, out string) error {
	img, err := Open(in)
	if err != nil {
		return err
	}
	return Save(img, out)
}

// EncodeTo writes the image to an arbitrary writer keyed by the ext hint.
// An empty or PPM hint uses the native serialization; jpeg is the fallback
// for writers without a usable name, matching the file encoder defaults.
func EncodeTo(img *Image, w io.Writer, ext string) error {
	switch strings.ToLower(ext) {
	case "", ".ppm", ".pnm":
		return img.Encode(w)
	case ".png":
		return png.Encode(w, img.ToNRGBA())
	case ".bmp":
		return bmp.Encode(w, img.ToNRGBA())
	default:
		return jpeg.Encode(w, img.ToNRGBA(), &jpeg.Options{Quality: 100})
	}
}

func isPPM(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ppm" || ext == ".pnm"
}
