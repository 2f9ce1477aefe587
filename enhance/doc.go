// Package enhance provides point-wise and histogram-based enhancement
// operators for 8-bit-per-channel raster images: linear
// brightness/contrast adjustment, histogram equalization, gamma
// correction, contrast stretching (native and HSV variants), unsharp
// mask sharpening, and multi-scale retinex.
//
// Every operator exists in an in-place form, mutating its image
// argument, and an out-of-place *Into form that fully overwrites a
// caller-owned destination with the transformed copy of the source. The
// operators are synchronous and keep no state between calls; concurrent
// calls on disjoint images are safe.
package enhance
