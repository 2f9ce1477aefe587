package raster

// SplitRGBA fills the requested single-channel planes from a packed
// colour image. Any plane pointer may be nil to skip that channel; the
// remaining planes are reshaped to the image's dimensions.
//
// Arguments:
// - img: The packed colour image to split.
// - r, g, b, a: Destination planes, each optional.
func SplitRGBA(img *Image[RGBA], r, g, b, a *Image[uint8]) {
	for _, plane := range []*Image[uint8]{r, g, b, a} {
		if plane != nil {
			plane.Reshape(img.Width, img.Height)
		}
	}
	for i, p := range img.Bitmap {
		if r != nil {
			r.Bitmap[i] = p.R
		}
		if g != nil {
			g.Bitmap[i] = p.G
		}
		if b != nil {
			b.Bitmap[i] = p.B
		}
		if a != nil {
			a.Bitmap[i] = p.A
		}
	}
}

// MergeRGBA interleaves single-channel planes back into a packed colour
// image. The R, G and B planes are required and must share the
// destination's dimensions. A nil alpha plane keeps the destination's
// current A bytes.
//
// Arguments:
// - r, g, b: Source planes for the colour channels.
// - a: Source plane for alpha, or nil to leave alpha untouched.
// - dst: The packed colour image to fill.
func MergeRGBA(r, g, b, a *Image[uint8], dst *Image[RGBA]) {
	for i := range dst.Bitmap {
		p := &dst.Bitmap[i]
		p.R = r.Bitmap[i]
		p.G = g.Bitmap[i]
		p.B = b.Bitmap[i]
		if a != nil {
			p.A = a.Bitmap[i]
		}
	}
}
