package snap

import (
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/pkg/errors"

	"github.com/tswan-dev/snap/utils"
)

// FaceDetector locates faces with a pigo cascade classifier so the carver
// can keep seams out of them.
type FaceDetector struct {
	classifier *pigo.Pigo

	// Angle is the plane rotated faces angle, in radians divided by pi.
	Angle float64
	// MinSize is the minimum face size searched for, in pixels.
	MinSize int
}

// NewFaceDetector unpacks a binary cascade classifier. The packet encodes
// the cascade trees, the tree depth, the thresholds and the leaf predictions.
func NewFaceDetector(cascade []byte) (*FaceDetector, error) {
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, errors.Wrap(err, "error unpacking the cascade file")
	}
	return &FaceDetector{classifier: classifier, MinSize: 20}, nil
}

// LoadFaceDetector reads a cascade classifier file from disk.
func LoadFaceDetector(path string) (*FaceDetector, error) {
	cascade, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading the cascade file")
	}
	return NewFaceDetector(cascade)
}

// Detect returns the bounding rectangles of the faces found in the image.
func (fd *FaceDetector) Detect(img *Image) []image.Rectangle {
	if img.width == 0 || img.height == 0 {
		return nil
	}
	maxSize := utils.Min(img.width, img.height)

	params := pigo.CascadeParams{
		MinSize:     fd.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: img.grayscale(),
			Rows:   img.height,
			Cols:   img.width,
			Dim:    img.width,
		},
	}

	dets := fd.classifier.RunCascade(params, fd.Angle)
	dets = fd.classifier.ClusterDetections(dets, 0.2)

	var faces []image.Rectangle
	for _, det := range dets {
		if det.Q < 5.0 {
			continue
		}
		faces = append(faces, image.Rect(
			det.Col-det.Scale/2,
			det.Row-det.Scale/2,
			det.Col+det.Scale/2,
			det.Row+det.Scale/2,
		))
	}
	return faces
}

// protectFaces raises the energy of every detected face region to the
// current maximum, which steers the seam search around faces.
func (c *Carver) protectFaces(img *Image, energy *Matrix[int], maxEnergy int) {
	bounds := image.Rect(0, 0, img.width, img.height)
	for _, face := range c.FaceDetector.Detect(img) {
		face = face.Intersect(bounds)
		for row := face.Min.Y; row < face.Max.Y; row++ {
			for col := face.Min.X; col < face.Max.X; col++ {
				energy.SetAt(row, col, maxEnergy)
			}
		}
	}
}

// grayscale converts the image channels to a flat luminance buffer,
// rescaled to the 8 bit range the classifier expects.
func (img *Image) grayscale() []uint8 {
	gray := make([]uint8, img.width*img.height)
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.pixelAt(row, col)
			r, g, b := float64(px.R), float64(px.G), float64(px.B)
			if img.maxIntensity != 255 && img.maxIntensity > 0 {
				scale := 255.0 / float64(img.maxIntensity)
				r, g, b = r*scale, g*scale, b*scale
			}
			gray[row*img.width+col] = uint8(0.299*r + 0.587*g + 0.114*b)
		}
	}
	return gray
}
