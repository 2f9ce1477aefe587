package raster

import "math"

// Sat converts a computed real value back into a displayable 8-bit
// sample: round half away from zero, then clamp to [0, 255]. NaN maps
// to 0 so a degenerate intermediate can never poison the output range.
//
// Arguments:
// - x: The real value to convert.
//
// Returns:
// - The saturated 8-bit sample.
//
// @example
// Sat(254.5) // 255
// Sat(-3.2)  // 0
func Sat(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	x = math.Round(x)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
