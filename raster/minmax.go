package raster

// MinMax returns the smallest and largest sample value of a
// single-channel plane. An empty plane yields (0, 0).
//
// Arguments:
// - img: The plane to scan.
//
// Returns:
// - The minimum and maximum sample value.
func MinMax[T Scalar](img *Image[T]) (min, max T) {
	if len(img.Bitmap) == 0 {
		return 0, 0
	}
	min, max = img.Bitmap[0], img.Bitmap[0]
	for _, v := range img.Bitmap[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
