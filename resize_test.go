package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResize_GrowsByScalingShrinksByCropping(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 4, 4)
	err := img.Resize(6, 2, Nearest, "", CropBottom)
	assert.NoError(err)
	assert.Equal(6, img.Width())
	assert.Equal(2, img.Height())
}

func TestResize_ShrinkingAxisRequiresCropMethod(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 4, 4)
	assert.ErrorIs(img.Resize(2, 4, Nearest, "", ""), ErrMissingCropMethod)

	img = makeTestImage(t, 4, 4)
	assert.ErrorIs(img.Resize(4, 2, Nearest, "", ""), ErrMissingCropMethod)
}

func TestResize_MatchingTargetLeavesImageUntouched(t *testing.T) {
	img := makeTestImage(t, 3, 3)
	snapshot := clone(img)

	assert.NoError(t, img.Resize(3, 3, Bilinear, "", ""))
	assertSamePixels(t, snapshot, img)
}

func TestResize_PropagatesAxisCropErrors(t *testing.T) {
	assert := assert.New(t)

	img := makeTestImage(t, 4, 4)
	assert.Error(img.Resize(2, 4, Nearest, CropTop, ""))
}
