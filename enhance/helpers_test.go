package enhance

import "github.com/nvr-ai/go-enhance/raster"

func grayImage(width, height int, samples ...uint8) *raster.Image[uint8] {
	img := raster.New[uint8](width, height)
	copy(img.Bitmap, samples)
	return img
}

func colourImage(width, height int, pixels ...raster.RGBA) *raster.Image[raster.RGBA] {
	img := raster.New[raster.RGBA](width, height)
	copy(img.Bitmap, pixels)
	return img
}
