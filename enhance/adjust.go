package enhance

import "github.com/nvr-ai/go-enhance/raster"

// Adjust applies a linear brightness/contrast transform in place:
// every sample becomes sat(alpha*v + beta). For colour images the same
// curve is applied independently to R, G, B and A. Alpha and beta must
// be finite; any finite pair is accepted, including negative alpha.
//
// Arguments:
// - img: The grayscale or colour image to transform.
// - alpha: Multiplicative gain.
// - beta: Additive offset.
//
// @example
// enhance.Adjust(img, 1.3, -20) // more contrast, slightly darker
func Adjust[T raster.Sample8](img *raster.Image[T], alpha, beta float64) {
	var curve [256]uint8
	for i := range curve {
		curve[i] = raster.Sat(alpha*float64(i) + beta)
	}
	raster.ApplyCurve(img, &curve)
}

// AdjustInto writes the adjusted copy of src into dst, leaving src
// untouched. dst is fully overwritten.
func AdjustInto[T raster.Sample8](dst, src *raster.Image[T], alpha, beta float64) {
	dst.CopyFrom(src)
	Adjust(dst, alpha, beta)
}
