package enhance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-enhance/raster"
)

func TestUnsharpMaskSkipsOutOfRangeWeight(t *testing.T) {
	for _, weight := range []float64{1.5, 1.0, -0.1, math.NaN()} {
		img := grayImage(2, 2, 10, 200, 30, 90)
		want := img.Clone()
		UnsharpMask(img, 3, weight)
		assert.Equal(t, want.Bitmap, img.Bitmap, "weight %v must be a silent no-op", weight)
	}
}

func TestUnsharpMaskZeroWeightIsIdentity(t *testing.T) {
	img := grayImage(3, 1, 10, 200, 30)
	UnsharpMask(img, 3, 0)
	assert.Equal(t, []uint8{10, 200, 30}, img.Bitmap,
		"with weight 0 the blur contributes nothing")
}

func TestUnsharpMaskSizeOneKernelIsIdentity(t *testing.T) {
	// A 1-tap Gaussian equals the source, so (v - w*v)/(1-w) = v.
	img := grayImage(3, 1, 10, 200, 30)
	UnsharpMask(img, 1, 0.5)
	assert.Equal(t, []uint8{10, 200, 30}, img.Bitmap)
}

func TestUnsharpMaskConstantImageUnchanged(t *testing.T) {
	img := grayImage(4, 4)
	for i := range img.Bitmap {
		img.Bitmap[i] = 120
	}
	UnsharpMask(img, 5, 0.7)
	for i, v := range img.Bitmap {
		require.Equal(t, uint8(120), v, "sample %d", i)
	}
}

func TestUnsharpMaskAmplifiesEdges(t *testing.T) {
	// A bright sample on a dark field must get brighter and its dark
	// neighbourhood darker (or clamped), never the other way around.
	img := raster.New[uint8](5, 5)
	for i := range img.Bitmap {
		img.Bitmap[i] = 50
	}
	img.Bitmap[12] = 200 // center
	UnsharpMask(img, 3, 0.5)

	assert.GreaterOrEqual(t, img.Bitmap[12], uint8(200), "the peak must not lose contrast")
	assert.LessOrEqual(t, img.Bitmap[11], uint8(50), "neighbours of the peak must not brighten")
}

func TestUnsharpMaskEmptyImage(t *testing.T) {
	img := raster.New[uint8](0, 0)
	UnsharpMask(img, 3, 0.5)
	assert.Zero(t, img.Size())
}

func TestUnsharpMaskIntoMatchesCopyThenInPlace(t *testing.T) {
	src := grayImage(3, 3, 10, 20, 30, 40, 250, 60, 70, 80, 90)
	before := src.Clone()

	var dst raster.Image[uint8]
	UnsharpMaskInto(&dst, src, 3, 0.4)

	want := src.Clone()
	UnsharpMask(want, 3, 0.4)
	require.Equal(t, want.Bitmap, dst.Bitmap)
	assert.Equal(t, before.Bitmap, src.Bitmap)
}

func TestUnsharpMaskRGBAKeepsAlpha(t *testing.T) {
	img := raster.New[raster.RGBA](3, 3)
	for i := range img.Bitmap {
		img.Bitmap[i] = raster.RGBA{R: 40, G: 80, B: 120, A: uint8(i * 20)}
	}
	img.Bitmap[4] = raster.RGBA{R: 240, G: 10, B: 200, A: 80}

	UnsharpMaskRGBA(img, 3, 0.5)
	for i, p := range img.Bitmap {
		want := uint8(i * 20)
		if i == 4 {
			want = 80
		}
		assert.Equal(t, want, p.A, "pixel %d alpha must be copied unchanged", i)
	}
}

func TestUnsharpMaskRGBASkipsOutOfRangeWeight(t *testing.T) {
	img := colourImage(2, 1,
		raster.RGBA{R: 10, G: 20, B: 30, A: 40},
		raster.RGBA{R: 200, G: 210, B: 220, A: 230},
	)
	want := img.Clone()
	for _, weight := range []float64{1.5, math.NaN()} {
		UnsharpMaskRGBA(img, 3, weight)
		assert.Equal(t, want.Bitmap, img.Bitmap, "weight %v must be a silent no-op", weight)
	}
}

func TestUnsharpMaskRGBAIntoMatchesCopyThenInPlace(t *testing.T) {
	src := colourImage(2, 2,
		raster.RGBA{R: 10, G: 20, B: 30, A: 1},
		raster.RGBA{R: 200, G: 40, B: 60, A: 2},
		raster.RGBA{R: 50, G: 250, B: 70, A: 3},
		raster.RGBA{R: 80, G: 90, B: 240, A: 4},
	)
	var dst raster.Image[raster.RGBA]
	UnsharpMaskRGBAInto(&dst, src, 3, 0.3)

	want := src.Clone()
	UnsharpMaskRGBA(want, 3, 0.3)
	require.Equal(t, want.Bitmap, dst.Bitmap)
}
