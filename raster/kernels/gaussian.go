// Package kernels implements the separable Gaussian convolution used by
// the sharpening and retinex operators. Output planes are float64 so
// callers can difference against them without quantization error.
package kernels

import (
	"math"

	"github.com/nvr-ai/go-enhance/raster"
)

// GaussianBlur convolves a grayscale image with a separable Gaussian of
// the given odd size, writing a float64 plane. Sigma is derived from
// the kernel size as (size-1)/6, covering roughly +-3 sigma.
//
// Arguments:
// - src: The grayscale source image.
// - dst: The destination plane, reshaped to the source dimensions.
// - size: Kernel size; must be odd and >= 1.
func GaussianBlur(src *raster.Image[uint8], dst *raster.Image[float64], size int) {
	blurPlane(src, dst, gaussianKernel(size, defaultSigma(size)))
}

// GaussianBlurF64 is the float-plane variant with an explicit sigma.
// A sigma <= 0 falls back to the size-derived default.
func GaussianBlurF64(src, dst *raster.Image[float64], size int, sigma float64) {
	if sigma <= 0 {
		sigma = defaultSigma(size)
	}
	blurPlane(src, dst, gaussianKernel(size, sigma))
}

func defaultSigma(size int) float64 {
	sigma := float64(size-1) / 6.0
	if sigma <= 0 {
		// A 1-tap kernel degenerates to the identity regardless of sigma.
		sigma = 0.5
	}
	return sigma
}

// gaussianKernel builds a normalized 1-D Gaussian of the given size.
// Normalization keeps the blur brightness-preserving.
func gaussianKernel(size int, sigma float64) []float64 {
	if size < 1 {
		size = 1
	}
	kernel := make([]float64, size)
	radius := size / 2
	denom := 2.0 * sigma * sigma

	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / denom)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// blurPlane runs the horizontal then vertical pass over a single
// channel. Border samples are clamped to the nearest edge.
func blurPlane[T raster.Scalar](src *raster.Image[T], dst *raster.Image[float64], kernel []float64) {
	w, h := src.Width, src.Height
	dst.Reshape(w, h)
	if w == 0 || h == 0 {
		return
	}
	radius := len(kernel) / 2

	// Horizontal pass into an intermediate plane.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src.Bitmap[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var acc float64
			for i, weight := range kernel {
				sx := clampIndex(x+i-radius, w)
				acc += float64(row[sx]) * weight
			}
			tmp[y*w+x] = acc
		}
	}

	// Vertical pass into dst.
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var acc float64
			for i, weight := range kernel {
				sy := clampIndex(y+i-radius, h)
				acc += tmp[sy*w+x] * weight
			}
			dst.Bitmap[y*w+x] = acc
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
