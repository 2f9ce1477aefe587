package enhance

import (
	"math"

	"github.com/nvr-ai/go-enhance/colorspace"
	"github.com/nvr-ai/go-enhance/raster"
)

// EqualizeHistogram redistributes the intensity distribution of a
// grayscale image so its cumulative histogram becomes as close to
// linear as possible.
//
// The mapping is built from the CDF scanned over indices 1..255: cdfMin
// is the smallest strictly positive CDF value in that range (index 0 is
// deliberately excluded from the scan) and the remap covers
// [minValue, maxValue], where maxValue is the largest index attaining
// the CDF maximum. The look-up table is initialized to the identity
// first, so sample values outside that interval pass through unchanged.
//
// Empty images, and degenerate distributions where cdfMin equals the
// pixel count (uniform images, or images whose only values are 0 and
// 1), are left unchanged.
//
// Arguments:
// - img: The grayscale image, equalized in place.
func EqualizeHistogram(img *raster.Image[uint8]) {
	n := uint32(img.Size())
	if n == 0 {
		return
	}

	hist := raster.HistogramOf(img)
	cdf := hist.CDF()

	cdfMin := uint32(math.MaxUint32)
	minValue := 0
	var cdfMax uint32
	maxValue := 0
	for i := 1; i < 256; i++ {
		if cdf[i] > 0 && cdf[i] < cdfMin {
			cdfMin = cdf[i]
			minValue = i
		}
		if cdf[i] >= cdfMax {
			cdfMax = cdf[i]
			maxValue = i
		}
	}
	if cdfMin >= n {
		// The whole remap interval would collapse to a single CDF value.
		return
	}

	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(i)
	}
	scale := 255.0 / float64(n-cdfMin)
	for x := minValue; x <= maxValue; x++ {
		lut[x] = raster.Sat(float64(cdf[x]-cdfMin) * scale)
	}
	raster.ApplyLUT(img, &lut)
}

// EqualizeHistogramInto writes the equalized copy of src into dst.
func EqualizeHistogramInto(dst, src *raster.Image[uint8]) {
	dst.CopyFrom(src)
	EqualizeHistogram(dst)
}

// EqualizeHistogramRGBA equalizes a colour image in place.
//
// With useHSV false, the R, G and B channels are equalized
// independently and alpha is re-merged untouched. With useHSV true, the
// image is converted to 8-bit HSV planes, only the value plane is
// equalized, and the result is converted back; hue, saturation and
// alpha are preserved.
//
// Arguments:
// - img: The colour image, equalized in place.
// - useHSV: Selects value-channel equalization over per-channel.
func EqualizeHistogramRGBA(img *raster.Image[raster.RGBA], useHSV bool) {
	if img.Size() == 0 {
		return
	}

	if !useHSV {
		var r, g, b, a raster.Image[uint8]
		raster.SplitRGBA(img, &r, &g, &b, &a)
		EqualizeHistogram(&r)
		EqualizeHistogram(&g)
		EqualizeHistogram(&b)
		raster.MergeRGBA(&r, &g, &b, &a, img)
		return
	}

	h := raster.New[uint8](img.Width, img.Height)
	s := raster.New[uint8](img.Width, img.Height)
	v := raster.New[uint8](img.Width, img.Height)
	colorspace.RGBAToHSV(img.Bitmap, h.Bitmap, s.Bitmap, v.Bitmap)
	EqualizeHistogram(v)
	// The writer only touches R, G and B, so alpha survives.
	colorspace.HSVToRGBA(h.Bitmap, s.Bitmap, v.Bitmap, img.Bitmap)
}

// EqualizeHistogramRGBAInto writes the equalized copy of src into dst.
func EqualizeHistogramRGBAInto(dst, src *raster.Image[raster.RGBA], useHSV bool) {
	dst.CopyFrom(src)
	EqualizeHistogramRGBA(dst, useHSV)
}
