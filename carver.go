package snap

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tswan-dev/snap/utils"
)

// Seam is a connected top-to-bottom path with exactly one pixel per row:
// seam[row] is the column removed from that row.
type Seam []int

// Carver runs the content-aware resize algorithm over an image.
// Every operation is a function of the current image state; no carving
// history persists between calls. The optional face detector raises the
// energy of detected face regions so seams route around them.
type Carver struct {
	// FaceDetector, when non nil, protects detected faces from carving.
	FaceDetector *FaceDetector
	// Debug records every removed seam into Seams for visualization.
	Debug bool
	// Seams accumulates the removed seams of the last carve when Debug is set.
	Seams []Seam
}

// NewCarver instantiates a new carver.
func NewCarver() *Carver {
	return &Carver{}
}

// Energy computes the dual-gradient importance score of every pixel.
// Each interior pixel gets the squared RGB distance between its north and
// south neighbors plus the squared RGB distance between its east and west
// neighbors. The border is then set uniformly to the maximum interior
// energy found, or to 1 when all interior energies are zero, so a seam can
// never exploit an artificially cheap edge. Images narrower or shorter
// than 3 pixels have no interior and degenerate to the border fill.
func (c *Carver) Energy(img *Image) *Matrix[int] {
	energy := NewMatrix[int](img.width, img.height)
	maxEnergy := 0

	for row := 1; row < img.height-1; row++ {
		for col := 1; col < img.width-1; col++ {
			n := img.pixelAt(row-1, col)
			s := img.pixelAt(row+1, col)
			e := img.pixelAt(row, col+1)
			w := img.pixelAt(row, col-1)

			val := n.squaredDifference(s) + e.squaredDifference(w)
			energy.SetAt(row, col, val)
			maxEnergy = utils.Max(maxEnergy, val)
		}
	}

	if maxEnergy == 0 {
		maxEnergy = 1
	}
	energy.FillBorder(maxEnergy)

	if c.FaceDetector != nil {
		c.protectFaces(img, energy, maxEnergy)
	}
	return energy
}

// VerticalCost computes the cumulative minimal path cost from the top row.
// Row 0 equals the energy row; every later cell adds its energy to the
// cheapest of the three connected cells of the previous row.
func (c *Carver) VerticalCost(img *Image) *Matrix[int] {
	energy := c.Energy(img)
	cost := NewMatrix[int](img.width, img.height)

	if img.height > 0 {
		for col := 0; col < img.width; col++ {
			cost.SetAt(0, col, energy.At(0, col))
		}
	}

	for row := 1; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			minPrev := cost.At(row-1, col)
			if col > 0 && cost.At(row-1, col-1) < minPrev {
				minPrev = cost.At(row-1, col-1)
			}
			if col < img.width-1 && cost.At(row-1, col+1) < minPrev {
				minPrev = cost.At(row-1, col+1)
			}
			cost.SetAt(row, col, energy.At(row, col)+minPrev)
		}
	}
	return cost
}

// MinimalVerticalSeam finds the globally cheapest top-to-bottom seam.
// It picks the minimum-cost column of the bottom row and walks upward,
// restricting each step to the three connected columns of the row above.
// The cost matrix already encodes optimal prefix costs per cell, so the
// windowed backtrace still yields a global minimum. Ties always resolve
// to the smallest column index.
func (c *Carver) MinimalVerticalSeam(img *Image) Seam {
	if img.height == 0 || img.width == 0 {
		return Seam{}
	}
	cost := c.VerticalCost(img)
	seam := make(Seam, img.height)

	col, _, ok := cost.MinInRowRange(img.height-1, 0, img.width)
	if !ok {
		panic("snap: empty bottom row in cost matrix")
	}
	seam[img.height-1] = col

	for row := img.height - 2; row >= 0; row-- {
		start := col - 1
		if start < 0 {
			start = 0
		}
		end := col + 2
		if end > img.width {
			end = img.width
		}
		col, _, ok = cost.MinInRowRange(row, start, end)
		if !ok {
			panic("snap: no valid columns in seam window")
		}
		seam[row] = col
	}
	return seam
}

// RemoveVerticalSeam removes the minimal vertical seam from the image and
// returns the removed seam. Each row shifts every pixel right of the seam
// one column left across all three channels; the seam is not a straight
// line, so the shift point differs per row. The width shrinks by one.
func (c *Carver) RemoveVerticalSeam(img *Image) Seam {
	seam := c.MinimalVerticalSeam(img)
	if len(seam) != img.height {
		panic(fmt.Sprintf("snap: seam has %d entries for %d rows", len(seam), img.height))
	}

	for row := 0; row < img.height; row++ {
		seamCol := seam[row]
		if seamCol >= img.width {
			// A correctly computed seam is in bounds by construction,
			// so this is a logic defect, not bad input.
			panic(fmt.Sprintf("snap: seam column %d at row %d exceeds image width %d",
				seamCol, row, img.width))
		}
		for col := seamCol; col < img.width-1; col++ {
			img.red.SetAt(row, col, img.red.At(row, col+1))
			img.green.SetAt(row, col, img.green.At(row, col+1))
			img.blue.SetAt(row, col, img.blue.At(row, col+1))
		}
	}

	img.width--
	img.red.TrimWidth(img.width)
	img.green.TrimWidth(img.width)
	img.blue.TrimWidth(img.width)
	return seam
}

// SeamCarveWidth reduces the image width to targetWidth by repeatedly
// removing the minimal vertical seam. The energy and cost matrices are
// recomputed from scratch on every iteration: removing a seam arbitrarily
// changes neighbor relationships, so no incremental update is valid.
// Growing the image is a scaling concern and is rejected here.
func (c *Carver) SeamCarveWidth(img *Image, targetWidth int) error {
	if targetWidth < 0 {
		return errors.Errorf("target width %d is negative", targetWidth)
	}
	if targetWidth > img.width {
		return errors.Errorf("target width %d exceeds image width %d", targetWidth, img.width)
	}
	if targetWidth == img.width {
		return nil
	}

	if c.Debug {
		c.Seams = c.Seams[:0]
	}
	for img.width > targetWidth {
		seam := c.RemoveVerticalSeam(img)
		if c.Debug {
			c.Seams = append(c.Seams, seam)
		}
	}
	return nil
}

// SeamCarveHeight reduces the image height to targetHeight by rotating the
// image a quarter turn and reusing the width reduction along the
// orthogonal axis.
func (c *Carver) SeamCarveHeight(img *Image, targetHeight int) error {
	if targetHeight < 0 {
		return errors.Errorf("target height %d is negative", targetHeight)
	}
	if targetHeight > img.height {
		return errors.Errorf("target height %d exceeds image height %d", targetHeight, img.height)
	}
	img.RotateLeft()
	err := c.SeamCarveWidth(img, targetHeight)
	img.RotateRight()
	return err
}

// SeamCarve reduces the image to targetWidth x targetHeight, carving the
// width first and the height second. The order is significant: the energy
// for height carving is computed on the already narrowed image, so the two
// orders do not produce identical results. This asymmetry is intentional.
func (c *Carver) SeamCarve(img *Image, targetWidth, targetHeight int) error {
	if err := c.SeamCarveWidth(img, targetWidth); err != nil {
		return err
	}
	return c.SeamCarveHeight(img, targetHeight)
}

// DrawSeam recolors the pixels of a seam for debugging purposes.
func DrawSeam(img *Image, seam Seam, px Pixel) {
	for row, col := range seam {
		img.SetPixel(row, col, px)
	}
}
