package enhance

import (
	"math"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-enhance/raster"
	"github.com/nvr-ai/go-enhance/raster/kernels"
)

// RetinexLevel selects the distribution of Gaussian scales when more
// than two filter iterations are used.
type RetinexLevel int

const (
	// RetinexUniform spreads the scales evenly, treating all image
	// intensities similarly.
	RetinexUniform RetinexLevel = iota
	// RetinexLow biases the scales toward small values, enhancing dark
	// regions.
	RetinexLow
	// RetinexHigh biases the scales toward large values, enhancing
	// bright regions.
	RetinexHigh
)

const maxRetinexScales = 8

// Retinex applies the multi-scale retinex with colour restoration
// (MSRCR) algorithm to a colour image in place. The image is filtered
// at several Gaussian scales per channel, the log-ratios between the
// image and its filtered versions are accumulated, a colour restoration
// term is applied, and the result is windowed around its mean by
// dynamic standard deviations before mapping back to [0, 255]. Alpha is
// preserved.
//
// Arguments:
// - img: The colour image to enhance.
// - scale: Depth of the retinex effect, in [16, 250]. 240 is a good default.
// - scaleDiv: Number of filter iterations, in [1, 8]; values above 2
//   exploit the multiscale nature of the algorithm.
// - level: Scale distribution for scaleDiv > 2.
// - dynamic: Output windowing in standard deviations; larger values
//   give less saturated results.
// - kernelSize: Gaussian kernel size, or -1 to derive an odd size from
//   the image dimensions.
//
// Returns:
// - ErrBadArgument when scale or scaleDiv is out of range; the image is
//   not touched.
func Retinex(img *raster.Image[raster.RGBA], scale, scaleDiv int, level RetinexLevel, dynamic float64, kernelSize int) error {
	if scale < 16 || scale > 250 {
		return errors.Wrapf(ErrBadArgument, "retinex scale must be in [16, 250], got %d", scale)
	}
	if scaleDiv < 1 || scaleDiv > maxRetinexScales {
		return errors.Wrapf(ErrBadArgument, "retinex scale division must be in [1, %d], got %d", maxRetinexScales, scaleDiv)
	}
	if img.Size() == 0 {
		return nil
	}
	msrcr(img, scale, scaleDiv, level, dynamic, kernelSize)
	return nil
}

// RetinexInto writes the enhanced copy of src into dst. On a bad
// argument neither image is touched.
func RetinexInto(dst, src *raster.Image[raster.RGBA], scale, scaleDiv int, level RetinexLevel, dynamic float64, kernelSize int) error {
	if scale < 16 || scale > 250 {
		return errors.Wrapf(ErrBadArgument, "retinex scale must be in [16, 250], got %d", scale)
	}
	if scaleDiv < 1 || scaleDiv > maxRetinexScales {
		return errors.Wrapf(ErrBadArgument, "retinex scale division must be in [1, %d], got %d", maxRetinexScales, scaleDiv)
	}
	dst.CopyFrom(src)
	return Retinex(dst, scale, scaleDiv, level, dynamic, kernelSize)
}

// retinexScales distributes the Gaussian sigmas over the filter
// iterations. One iteration uses half the scale; two use half and full;
// more follow the requested level's distribution.
func retinexScales(scaleDiv int, level RetinexLevel, scale int) []float64 {
	scales := make([]float64, maxRetinexScales)

	switch {
	case scaleDiv == 1:
		scales[0] = float64(scale) / 2.0
	case scaleDiv == 2:
		scales[0] = float64(scale) / 2.0
		scales[1] = float64(scale)
	default:
		switch level {
		case RetinexLow:
			step := math.Log(float64(scale)-2.0) / float64(scaleDiv)
			for i := 0; i < scaleDiv; i++ {
				scales[i] = 2.0 + math.Pow(10.0, float64(i)*step/math.Ln10)
			}
		case RetinexHigh:
			step := math.Log(float64(scale)-2.0) / float64(scaleDiv)
			for i := 0; i < scaleDiv; i++ {
				scales[i] = float64(scale) - math.Pow(10.0, float64(i)*step/math.Ln10)
			}
		default: // RetinexUniform
			step := float64(scale) / float64(scaleDiv)
			for i := 0; i < scaleDiv; i++ {
				scales[i] = 2.0 + float64(i)*step
			}
		}
	}
	return scales
}

func msrcr(img *raster.Image[raster.RGBA], scale, scaleDiv int, level RetinexLevel, dynamic float64, kernelSize int) {
	scales := retinexScales(scaleDiv, level, scale)
	weight := 1.0 / float64(scaleDiv)
	n := img.Size()

	if kernelSize == -1 {
		// Derive an odd kernel from the image dimensions.
		k := min(img.Width, img.Height) / 2
		kernelSize = (k - k%2) + 1
	}

	// Per-channel log-ratio accumulation against each blurred scale.
	// Channel values are shifted by 1 so log never sees zero.
	var channels [3]*raster.Image[float64]
	var accum [3]*raster.Image[float64]
	blurred := raster.New[float64](img.Width, img.Height)
	for c := 0; c < 3; c++ {
		channels[c] = raster.New[float64](img.Width, img.Height)
		accum[c] = raster.New[float64](img.Width, img.Height)
		for i, p := range img.Bitmap {
			switch c {
			case 0:
				channels[c].Bitmap[i] = float64(p.R) + 1.0
			case 1:
				channels[c].Bitmap[i] = float64(p.G) + 1.0
			default:
				channels[c].Bitmap[i] = float64(p.B) + 1.0
			}
		}

		for sc := 0; sc < scaleDiv; sc++ {
			kernels.GaussianBlurF64(channels[c], blurred, kernelSize, scales[sc])
			for i := 0; i < n; i++ {
				accum[c].Bitmap[i] += weight * (math.Log(channels[c].Bitmap[i]) - math.Log(blurred.Bitmap[i]))
			}
		}
	}

	// Colour restoration: weigh each channel's retinex output by its
	// log-share of the pixel's total intensity.
	dest := make([]float64, n*3)
	const gain, alpha, offset = 1.0, 128.0, 0.0
	for i, p := range img.Bitmap {
		logl := math.Log(float64(p.R) + float64(p.G) + float64(p.B) + 3.0)
		for c := 0; c < 3; c++ {
			dest[i*3+c] = gain*(math.Log(alpha*channels[c].Bitmap[i])-logl)*accum[c].Bitmap[i] + offset
		}
	}

	// Window the result around mean +- dynamic*stddev and map to 8 bits.
	var sum float64
	for _, v := range dest {
		sum += v
	}
	mean := sum / float64(len(dest))
	var sqSum float64
	for _, v := range dest {
		d := v - mean
		sqSum += d * d
	}
	stdev := math.Sqrt(sqSum / float64(len(dest)))

	mini := mean - dynamic*stdev
	rng := 2.0 * dynamic * stdev
	if math.Abs(rng) < 1e-9 {
		rng = 1.0
	}

	for i := range img.Bitmap {
		p := &img.Bitmap[i]
		p.R = raster.Sat(255.0 * (dest[i*3+0] - mini) / rng)
		p.G = raster.Sat(255.0 * (dest[i*3+1] - mini) / rng)
		p.B = raster.Sat(255.0 * (dest[i*3+2] - mini) / rng)
	}
}
