package enhance

import (
	"github.com/nvr-ai/go-enhance/raster"
	"github.com/nvr-ai/go-enhance/raster/kernels"
)

// UnsharpMask sharpens a grayscale image in place by removing a
// weighted Gaussian-blurred copy: out = sat((in - weight*blur) /
// (1 - weight)), which adds a scaled high-pass of the image back into
// itself with total gain 1/(1-weight).
//
// A weight outside [0, 1) makes the call a no-op; callers are expected
// to validate the weight themselves.
//
// Arguments:
// - img: The grayscale image to sharpen.
// - size: Gaussian kernel size; must be odd and >= 1.
// - weight: Sharpening weight in [0, 1).
//
// @example
// enhance.UnsharpMask(img, 7, 0.6)
func UnsharpMask(img *raster.Image[uint8], size int, weight float64) {
	// Written so NaN also fails the check and skips.
	if !(weight >= 0 && weight < 1) {
		return
	}
	if img.Size() == 0 {
		return
	}

	blurred := raster.New[float64](img.Width, img.Height)
	kernels.GaussianBlur(img, blurred, size)

	inv := 1.0 / (1.0 - weight)
	for i, v := range img.Bitmap {
		img.Bitmap[i] = raster.Sat((float64(v) - weight*blurred.Bitmap[i]) * inv)
	}
}

// UnsharpMaskInto writes the sharpened copy of src into dst.
func UnsharpMaskInto(dst, src *raster.Image[uint8], size int, weight float64) {
	dst.CopyFrom(src)
	UnsharpMask(dst, size, weight)
}

// UnsharpMaskRGBA sharpens a colour image in place. R, G and B are
// blurred and sharpened independently; alpha is copied through
// unchanged. The weight contract matches the grayscale form.
//
// Arguments:
// - img: The colour image to sharpen.
// - size: Gaussian kernel size; must be odd and >= 1.
// - weight: Sharpening weight in [0, 1).
func UnsharpMaskRGBA(img *raster.Image[raster.RGBA], size int, weight float64) {
	// Written so NaN also fails the check and skips.
	if !(weight >= 0 && weight < 1) {
		return
	}
	if img.Size() == 0 {
		return
	}

	var r, g, b raster.Image[uint8]
	raster.SplitRGBA(img, &r, &g, &b, nil)

	blurR := raster.New[float64](img.Width, img.Height)
	blurG := raster.New[float64](img.Width, img.Height)
	blurB := raster.New[float64](img.Width, img.Height)
	kernels.GaussianBlur(&r, blurR, size)
	kernels.GaussianBlur(&g, blurG, size)
	kernels.GaussianBlur(&b, blurB, size)

	inv := 1.0 / (1.0 - weight)
	for i := range img.Bitmap {
		p := &img.Bitmap[i]
		p.R = raster.Sat((float64(p.R) - weight*blurR.Bitmap[i]) * inv)
		p.G = raster.Sat((float64(p.G) - weight*blurG.Bitmap[i]) * inv)
		p.B = raster.Sat((float64(p.B) - weight*blurB.Bitmap[i]) * inv)
	}
}

// UnsharpMaskRGBAInto writes the sharpened copy of src into dst.
func UnsharpMaskRGBAInto(dst, src *raster.Image[raster.RGBA], size int, weight float64) {
	dst.CopyFrom(src)
	UnsharpMaskRGBA(dst, size, weight)
}
