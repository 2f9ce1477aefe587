package raster

// Sample8 enumerates the sample types that can index an 8-bit look-up
// table: grayscale samples and packed RGBA pixels.
type Sample8 interface {
	uint8 | RGBA
}

// ApplyLUT replaces every sample of a grayscale image with the table
// entry it indexes. Exactly one write per sample; the table is read
// only, so input reads and output writes never alias.
//
// Arguments:
// - img: The grayscale image, transformed in place.
// - lut: The 256-entry replacement table.
func ApplyLUT(img *Image[uint8], lut *[256]uint8) {
	for i, v := range img.Bitmap {
		img.Bitmap[i] = lut[v]
	}
}

// ApplyLUTRGBA applies a 256-entry RGBA table to a colour image. Each
// channel indexes the table with its own value and reads back the field
// of the same name, so the four channels are remapped independently.
//
// Arguments:
// - img: The colour image, transformed in place.
// - lut: The 256-entry RGBA replacement table.
func ApplyLUTRGBA(img *Image[RGBA], lut *[256]RGBA) {
	for i, p := range img.Bitmap {
		img.Bitmap[i] = RGBA{
			R: lut[p.R].R,
			G: lut[p.G].G,
			B: lut[p.B].B,
			A: lut[p.A].A,
		}
	}
}

// ApplyCurve applies a single 8-bit curve to either pixel layout. For
// grayscale images the curve is the LUT; for colour images the curve is
// broadcast to all four channels. Operators whose transform is one
// scalar curve (brightness, gamma) dispatch through here instead of
// duplicating their loops per layout.
func ApplyCurve[T Sample8](img *Image[T], curve *[256]uint8) {
	switch im := any(img).(type) {
	case *Image[uint8]:
		ApplyLUT(im, curve)
	case *Image[RGBA]:
		var lut [256]RGBA
		for i := range lut {
			lut[i] = Gray(curve[i])
		}
		ApplyLUTRGBA(im, &lut)
	}
}
