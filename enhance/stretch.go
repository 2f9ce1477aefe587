package enhance

import "github.com/nvr-ai/go-enhance/raster"

// StretchContrast linearly rescales a grayscale image so its darkest
// sample maps to 0 and its brightest to 255, in place. The mapping is
// integer arithmetic, 255*(v-min)/range with truncation. A constant
// image has no range to stretch and is left unchanged.
//
// Arguments:
// - img: The grayscale image to stretch.
func StretchContrast(img *raster.Image[uint8]) {
	if img.Size() == 0 {
		return
	}
	minv, maxv := raster.MinMax(img)

	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(i)
	}
	fillStretchLUT(minv, maxv, func(x int, v uint8) { lut[x] = v })
	raster.ApplyLUT(img, &lut)
}

// StretchContrastInto writes the stretched copy of src into dst.
func StretchContrastInto(dst, src *raster.Image[uint8]) {
	dst.CopyFrom(src)
	StretchContrast(dst)
}

// StretchContrastRGBA stretches a colour image in place with each of
// the four channels rescaled by its own extrema, alpha included. One
// RGBA look-up table carries the four independent curves and is applied
// in a single pass.
//
// Arguments:
// - img: The colour image to stretch.
func StretchContrastRGBA(img *raster.Image[raster.RGBA]) {
	if img.Size() == 0 {
		return
	}

	var r, g, b, a raster.Image[uint8]
	raster.SplitRGBA(img, &r, &g, &b, &a)

	var lut [256]raster.RGBA
	for i := range lut {
		lut[i] = raster.Gray(uint8(i))
	}
	minR, maxR := raster.MinMax(&r)
	fillStretchLUT(minR, maxR, func(x int, v uint8) { lut[x].R = v })
	minG, maxG := raster.MinMax(&g)
	fillStretchLUT(minG, maxG, func(x int, v uint8) { lut[x].G = v })
	minB, maxB := raster.MinMax(&b)
	fillStretchLUT(minB, maxB, func(x int, v uint8) { lut[x].B = v })
	minA, maxA := raster.MinMax(&a)
	fillStretchLUT(minA, maxA, func(x int, v uint8) { lut[x].A = v })

	raster.ApplyLUTRGBA(img, &lut)
}

// StretchContrastRGBAInto writes the stretched copy of src into dst.
func StretchContrastRGBAInto(dst, src *raster.Image[raster.RGBA]) {
	dst.CopyFrom(src)
	StretchContrastRGBA(dst)
}

// fillStretchLUT writes the stretch curve for one channel over
// [minv, maxv]. Entries outside the interval are never indexed by
// samples of that channel and keep their identity value.
func fillStretchLUT(minv, maxv uint8, set func(x int, v uint8)) {
	lo, hi := int(minv), int(maxv)
	rng := hi - lo
	if rng <= 0 {
		set(lo, minv)
		return
	}
	for x := lo; x <= hi; x++ {
		set(x, uint8(255*(x-lo)/rng))
	}
}
