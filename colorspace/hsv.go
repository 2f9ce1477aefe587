// Package colorspace converts between packed RGBA buffers and planar
// hue-saturation-value channels. Two numeric forms are provided: an
// 8-bit quantized form where H maps [0 deg, 360 deg) linearly onto
// [0, 255], and a float64 form with all three components in [0, 1].
// Alpha is never carried: the RGBA writers only touch R, G and B, so
// the packed buffer's A bytes survive a round trip untouched.
package colorspace

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/nvr-ai/go-enhance/raster"
)

// RGBAToHSV fills the three 8-bit planes from a packed colour buffer.
// All slices must have the same length. The conversion runs in float32;
// the results are quantized to 8 bits so the narrower type loses
// nothing.
//
// Arguments:
// - rgba: The packed pixel buffer.
// - h, s, v: Destination planes, one sample per pixel.
func RGBAToHSV(rgba []raster.RGBA, h, s, v []uint8) {
	for i, p := range rgba {
		r := float32(p.R) / 255
		g := float32(p.G) / 255
		b := float32(p.B) / 255

		maxC := math32.Max(r, math32.Max(g, b))
		minC := math32.Min(r, math32.Min(g, b))
		diff := maxC - minC

		var sf float32
		if maxC > 0 {
			sf = diff / maxC
		}

		var hf float32
		switch {
		case diff == 0:
			hf = 0
		case maxC == r:
			hf = math32.Mod((g-b)/diff, 6) / 6
		case maxC == g:
			hf = ((b-r)/diff + 2) / 6
		default:
			hf = ((r-g)/diff + 4) / 6
		}
		if hf < 0 {
			hf++
		}

		h[i] = uint8(math32.Round(hf * 255))
		s[i] = uint8(math32.Round(sf * 255))
		v[i] = uint8(math32.Round(maxC * 255))
	}
}

// HSVToRGBA writes the colour channels of a packed buffer from three
// 8-bit planes. The A field of every destination pixel is left as is.
//
// Arguments:
// - h, s, v: Source planes, one sample per pixel.
// - rgba: The packed pixel buffer to fill.
func HSVToRGBA(h, s, v []uint8, rgba []raster.RGBA) {
	for i := range rgba {
		hf := float32(h[i]) / 255 * 6
		sf := float32(s[i]) / 255
		vf := float32(v[i]) / 255

		sector := math32.Floor(hf)
		f := hf - sector
		p := vf * (1 - sf)
		q := vf * (1 - sf*f)
		t := vf * (1 - sf*(1-f))

		var r, g, b float32
		switch int(sector) % 6 {
		case 0:
			r, g, b = vf, t, p
		case 1:
			r, g, b = q, vf, p
		case 2:
			r, g, b = p, vf, t
		case 3:
			r, g, b = p, q, vf
		case 4:
			r, g, b = t, p, vf
		default:
			r, g, b = vf, p, q
		}

		px := &rgba[i]
		px.R = uint8(math32.Round(r * 255))
		px.G = uint8(math32.Round(g * 255))
		px.B = uint8(math32.Round(b * 255))
	}
}

// RGBAToHSVFloat fills three float64 planes, each component in [0, 1].
// Hue is rescaled from go-colorful's degrees.
func RGBAToHSVFloat(rgba []raster.RGBA, h, s, v []float64) {
	for i, p := range rgba {
		c := colorful.Color{
			R: float64(p.R) / 255,
			G: float64(p.G) / 255,
			B: float64(p.B) / 255,
		}
		hd, sv, vv := c.Hsv()
		h[i] = hd / 360
		s[i] = sv
		v[i] = vv
	}
}

// HSVFloatToRGBA writes the colour channels of a packed buffer from
// three float64 planes in [0, 1]. Alpha is left as is.
func HSVFloatToRGBA(h, s, v []float64, rgba []raster.RGBA) {
	for i := range rgba {
		c := colorful.Hsv(h[i]*360, s[i], v[i])
		px := &rgba[i]
		px.R = raster.Sat(c.R * 255)
		px.G = raster.Sat(c.G * 255)
		px.B = raster.Sat(c.B * 255)
	}
}
