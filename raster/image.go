// Package raster - planar image containers and the 8-bit look-up table
// primitives shared by the enhancement operators.
package raster

// RGBA is a packed 4-channel sample. Field order matches byte order
// (R, G, B, A) so a []RGBA buffer is bit-compatible with interleaved
// RGBA bytes.
type RGBA struct {
	R, G, B, A uint8
}

// Gray returns an RGBA sample with all four channels set to v.
// This mirrors broadcasting a single intensity across a colour pixel.
func Gray(v uint8) RGBA {
	return RGBA{R: v, G: v, B: v, A: v}
}

// Sample enumerates the element types an Image can hold: 8-bit samples,
// 64-bit float planes for intermediates, and packed RGBA pixels.
type Sample interface {
	uint8 | float64 | RGBA
}

// Scalar restricts to the single-channel sample types.
type Scalar interface {
	uint8 | float64
}

// Image is a 2-D raster: Width x Height samples of type T stored
// row-major in Bitmap. The zero value is an empty 0x0 image.
type Image[T Sample] struct {
	// Width is the number of samples per row.
	Width int
	// Height is the number of rows.
	Height int
	// Bitmap is the row-major sample buffer, len = Width*Height.
	Bitmap []T
}

// New allocates a zeroed Width x Height image.
//
// Arguments:
// - width: The number of samples per row.
// - height: The number of rows.
//
// Returns:
// - A new image whose buffer is fully allocated and zeroed.
func New[T Sample](width, height int) *Image[T] {
	return &Image[T]{
		Width:  width,
		Height: height,
		Bitmap: make([]T, width*height),
	}
}

// Size returns the total sample count (Width * Height).
func (img *Image[T]) Size() int {
	return img.Width * img.Height
}

// Clone returns a deep copy: same dimensions, independent buffer.
func (img *Image[T]) Clone() *Image[T] {
	out := New[T](img.Width, img.Height)
	copy(out.Bitmap, img.Bitmap)
	return out
}

// CopyFrom makes img a full copy of src (dimensions and contents).
// Any prior contents of img are discarded; the buffers never alias.
func (img *Image[T]) CopyFrom(src *Image[T]) {
	img.Reshape(src.Width, src.Height)
	copy(img.Bitmap, src.Bitmap)
}

// Reshape resizes img to width x height, reusing the existing buffer
// when it already has the right length. Sample values after a
// reallocating Reshape are zero; callers are expected to overwrite the
// whole buffer.
func (img *Image[T]) Reshape(width, height int) {
	img.Width = width
	img.Height = height
	if len(img.Bitmap) != width*height {
		img.Bitmap = make([]T, width*height)
	}
}
