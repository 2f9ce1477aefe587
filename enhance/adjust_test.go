package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-enhance/raster"
)

func TestAdjustScalesAndOffsets(t *testing.T) {
	img := grayImage(2, 2, 10, 20, 30, 40)
	Adjust(img, 2.0, 5)
	assert.Equal(t, []uint8{25, 45, 65, 85}, img.Bitmap)
}

func TestAdjustSaturates(t *testing.T) {
	img := grayImage(1, 1, 200)
	Adjust(img, 2.0, 0)
	assert.Equal(t, []uint8{255}, img.Bitmap)
}

func TestAdjustIdentity(t *testing.T) {
	img := grayImage(2, 2, 0, 13, 200, 255)
	want := img.Clone()
	Adjust(img, 1.0, 0.0)
	assert.Equal(t, want.Bitmap, img.Bitmap, "alpha=1, beta=0 must be the identity")
}

func TestAdjustNegativeAlphaInverts(t *testing.T) {
	img := grayImage(3, 1, 0, 100, 255)
	Adjust(img, -1.0, 255)
	assert.Equal(t, []uint8{255, 155, 0}, img.Bitmap)
}

func TestAdjustColourAppliesToAllChannels(t *testing.T) {
	img := colourImage(1, 1, raster.RGBA{R: 10, G: 20, B: 30, A: 40})
	Adjust(img, 2.0, 5)
	assert.Equal(t, raster.RGBA{R: 25, G: 45, B: 65, A: 85}, img.Bitmap[0],
		"the curve is applied independently to R, G, B and A")
}

func TestAdjustIntoMatchesCopyThenInPlace(t *testing.T) {
	src := grayImage(2, 2, 10, 20, 30, 40)
	srcBefore := src.Clone()

	var dst raster.Image[uint8]
	AdjustInto(&dst, src, 2.0, 5)

	want := src.Clone()
	Adjust(want, 2.0, 5)

	require.Equal(t, want.Bitmap, dst.Bitmap, "out-of-place must equal copy-then-in-place")
	assert.Equal(t, srcBefore.Bitmap, src.Bitmap, "the source must stay untouched")
}

func TestAdjustEmptyImage(t *testing.T) {
	img := raster.New[uint8](0, 0)
	Adjust(img, 2.0, 5)
	assert.Zero(t, img.Size())
}
