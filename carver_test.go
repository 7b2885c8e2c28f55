package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformImage(width, height int, px Pixel) *Image {
	img := NewImage(width, height, 255, FormatP6)
	img.Fill(px)
	return img
}

func TestCarver_EnergyOfUniformImage(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(4, 4, Pixel{R: 100, G: 100, B: 100})
	energy := NewCarver().Energy(img)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			onBorder := row == 0 || row == 3 || col == 0 || col == 3
			if onBorder {
				assert.Equal(1, energy.At(row, col), "border pixel (%d,%d)", row, col)
			} else {
				assert.Equal(0, energy.At(row, col), "interior pixel (%d,%d)", row, col)
			}
		}
	}
}

func TestCarver_EnergyBorderUsesMaxInteriorValue(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(5, 5, Pixel{R: 10, G: 10, B: 10})
	img.SetPixel(2, 2, Pixel{R: 20, G: 10, B: 10})

	energy := NewCarver().Energy(img)
	maxInterior := 0
	for row := 1; row < 4; row++ {
		for col := 1; col < 4; col++ {
			if v := energy.At(row, col); v > maxInterior {
				maxInterior = v
			}
		}
	}
	assert.Greater(maxInterior, 0)
	assert.Equal(maxInterior, energy.At(0, 0))
	assert.Equal(maxInterior, energy.At(4, 4))
}

func TestCarver_EnergyDegenerateDimensionsFallBackToBorderFill(t *testing.T) {
	assert := assert.New(t)

	// Too narrow for an interior: the whole matrix is border.
	img := uniformImage(2, 3, Pixel{R: 5, G: 5, B: 5})
	energy := NewCarver().Energy(img)
	for row := 0; row < 3; row++ {
		for col := 0; col < 2; col++ {
			assert.Equal(1, energy.At(row, col))
		}
	}
}

func TestCarver_VerticalCostAccumulatesCheapestPath(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(2, 3, Pixel{R: 5, G: 5, B: 5})
	cost := NewCarver().VerticalCost(img)

	// Energy is uniformly 1, so cost grows by one per row.
	for row := 0; row < 3; row++ {
		for col := 0; col < 2; col++ {
			assert.Equal(row+1, cost.At(row, col))
		}
	}
}

func TestCarver_MinimalSeamIsValidAndConnected(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 6, 5)
	seam := NewCarver().MinimalVerticalSeam(img)

	assert.Len(seam, img.Height())
	for row, col := range seam {
		assert.GreaterOrEqual(col, 0)
		assert.Less(col, img.Width())
		if row > 0 {
			diff := seam[row] - seam[row-1]
			assert.LessOrEqual(diff*diff, 1, "seam disconnects between rows %d and %d", row-1, row)
		}
	}
}

func TestCarver_SeamTiesResolveToLeftmostColumn(t *testing.T) {
	assert := assert.New(t)

	// No interior, so every cell carries the same energy and the whole
	// cost matrix is tied; the deterministic choice is column zero.
	img := uniformImage(2, 3, Pixel{R: 9, G: 9, B: 9})
	seam := NewCarver().MinimalVerticalSeam(img)

	assert.Equal(Seam{0, 0, 0}, seam)
}

func TestCarver_RemoveSeamDropsExactlyOnePixelPerRow(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 5, 4)
	var before [][]Pixel
	for row := 0; row < img.Height(); row++ {
		before = append(before, rowPixels(img, row))
	}

	seam := NewCarver().RemoveVerticalSeam(img)

	assert.Equal(4, img.Width())
	assert.Equal(4, img.Height())
	for row := 0; row < img.Height(); row++ {
		want := append([]Pixel{}, before[row][:seam[row]]...)
		want = append(want, before[row][seam[row]+1:]...)
		assert.Equal(want, rowPixels(img, row), "row %d is not the original minus the seam pixel", row)
	}
}

func TestCarver_SeamCarveWidthReachesTargetAndIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 6, 4)
	c := NewCarver()

	assert.NoError(c.SeamCarveWidth(img, 4))
	assert.Equal(4, img.Width())
	assert.Equal(4, img.Height())

	snapshot := clone(img)
	assert.NoError(c.SeamCarveWidth(img, 4))
	assertSamePixels(t, snapshot, img)
}

func TestCarver_SeamCarveWidthRejectsGrowth(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 4, 4)
	c := NewCarver()

	assert.Error(c.SeamCarveWidth(img, 5))
	assert.Error(c.SeamCarveWidth(img, -1))
	assert.Error(c.SeamCarveHeight(img, 5))
	assert.Equal(4, img.Width())
	assert.Equal(4, img.Height())
}

func TestCarver_SeamCarveHeightCarvesOrthogonalAxis(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 5, 6)
	assert.NoError(NewCarver().SeamCarveHeight(img, 4))
	assert.Equal(5, img.Width())
	assert.Equal(4, img.Height())
}

func TestCarver_SeamCarveRunsWidthThenHeight(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 6, 5)
	assert.NoError(NewCarver().SeamCarve(img, 4, 3))
	assert.Equal(4, img.Width())
	assert.Equal(3, img.Height())
}

func TestCarver_BrightPixelSurvivesCarving(t *testing.T) {
	assert := assert.New(t)

	bright := Pixel{R: 250, G: 240, B: 230}
	img := uniformImage(5, 5, Pixel{R: 10, G: 10, B: 10})
	img.SetPixel(2, 3, bright)

	assert.NoError(NewCarver().SeamCarveWidth(img, 4))
	assert.Equal(4, img.Width())
	assert.Equal(5, img.Height())

	found := false
	for _, px := range rowPixels(img, 2) {
		if px == bright {
			found = true
		}
	}
	assert.True(found, "the bright pixel should survive with its RGB values unchanged")
}

func TestCarver_DebugRecordsRemovedSeams(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 6, 4)
	c := NewCarver()
	c.Debug = true

	assert.NoError(c.SeamCarveWidth(img, 4))
	assert.Len(c.Seams, 2)
	for _, seam := range c.Seams {
		assert.Len(seam, 4)
	}
}

func TestCarver_DrawSeamRecolorsPath(t *testing.T) {
	assert := assert.New(t)

	img := uniformImage(3, 3, Pixel{R: 1, G: 1, B: 1})
	mark := Pixel{R: 255, G: 0, B: 0}
	DrawSeam(img, Seam{0, 1, 2}, mark)

	for row, col := range []int{0, 1, 2} {
		px, _ := img.GetPixel(row, col)
		assert.Equal(mark, px)
	}
}

func rowPixels(img *Image, row int) []Pixel {
	pixels := make([]Pixel, img.Width())
	for col := 0; col < img.Width(); col++ {
		pixels[col], _ = img.GetPixel(row, col)
	}
	return pixels
}
