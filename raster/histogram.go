package raster

// Histogram counts occurrences of each 8-bit value in a grayscale
// image. The sum over all bins equals the image's sample count.
// Counts are 32-bit, matching the supported image sizes.
type Histogram [256]uint32

// CDF is the cumulative form of a Histogram: CDF[i] is the number of
// samples with value <= i. Monotonically non-decreasing; CDF[255] is
// the total sample count.
type CDF [256]uint32

// HistogramOf accumulates the value distribution of a grayscale image.
//
// Arguments:
// - img: The grayscale image to scan.
//
// Returns:
// - The per-value occurrence counts.
func HistogramOf(img *Image[uint8]) Histogram {
	var h Histogram
	for _, v := range img.Bitmap {
		h[v]++
	}
	return h
}

// CDF computes the prefix sums of the histogram.
func (h *Histogram) CDF() CDF {
	var c CDF
	var sum uint32
	for i, n := range h {
		sum += n
		c[i] = sum
	}
	return c
}
