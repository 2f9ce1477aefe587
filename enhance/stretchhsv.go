package enhance

import (
	"github.com/nvr-ai/go-enhance/colorspace"
	"github.com/nvr-ai/go-enhance/raster"
)

// StretchContrastHSV stretches the saturation and value components of a
// colour image over [0, 1] in the floating-point HSV space, in place.
// Hue is never touched, so colours keep their tint; alpha bytes are
// preserved from the original buffer. A component whose range is zero
// is left unscaled.
//
// Arguments:
// - img: The colour image to stretch.
func StretchContrastHSV(img *raster.Image[raster.RGBA]) {
	if img.Size() == 0 {
		return
	}

	h := raster.New[float64](img.Width, img.Height)
	s := raster.New[float64](img.Width, img.Height)
	v := raster.New[float64](img.Width, img.Height)
	colorspace.RGBAToHSVFloat(img.Bitmap, h.Bitmap, s.Bitmap, v.Bitmap)

	stretchUnitPlane(s)
	stretchUnitPlane(v)

	colorspace.HSVFloatToRGBA(h.Bitmap, s.Bitmap, v.Bitmap, img.Bitmap)
}

// StretchContrastHSVInto writes the stretched copy of src into dst.
func StretchContrastHSVInto(dst, src *raster.Image[raster.RGBA]) {
	dst.CopyFrom(src)
	StretchContrastHSV(dst)
}

// stretchUnitPlane rescales a [0, 1] plane so its extrema land on 0 and
// 1. A zero range means the plane is constant and stays as is.
func stretchUnitPlane(p *raster.Image[float64]) {
	lo, hi := raster.MinMax(p)
	rng := hi - lo
	if rng <= 0 {
		return
	}
	for i, x := range p.Bitmap {
		p.Bitmap[i] = (x - lo) / rng
	}
}
