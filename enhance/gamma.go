package enhance

import (
	"math"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-enhance/raster"
)

// GammaCorrection applies the power-law curve
// sat(255 * (v/255)^(1/gamma)) in place. For colour images the same
// curve is applied to all four channels.
//
// Arguments:
// - img: The grayscale or colour image to transform.
// - gamma: Gamma value; must be strictly positive.
//
// Returns:
// - ErrBadArgument when gamma <= 0 (or NaN); the image is not touched.
//
// @example
// err := enhance.GammaCorrection(img, 2.2)
func GammaCorrection[T raster.Sample8](img *raster.Image[T], gamma float64) error {
	if !(gamma > 0) {
		return errors.Wrapf(ErrBadArgument, "gamma must be positive, got %g", gamma)
	}
	inverse := 1.0 / gamma

	var curve [256]uint8
	for i := range curve {
		curve[i] = raster.Sat(math.Pow(float64(i)/255.0, inverse) * 255.0)
	}
	raster.ApplyCurve(img, &curve)
	return nil
}

// GammaCorrectionInto writes the gamma-corrected copy of src into dst.
// On a bad gamma value neither image is touched.
func GammaCorrectionInto[T raster.Sample8](dst, src *raster.Image[T], gamma float64) error {
	if !(gamma > 0) {
		return errors.Wrapf(ErrBadArgument, "gamma must be positive, got %g", gamma)
	}
	dst.CopyFrom(src)
	return GammaCorrection(dst, gamma)
}
