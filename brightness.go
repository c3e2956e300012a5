package seamcarver

import "image"

// Brightness returns the unweighted mean of the three color channels.
func Brightness(r, g, b uint8) uint8 {
	return uint8((uint16(r) + uint16(g) + uint16(b)) / 3)
}

// brightnessPlane converts the image to a row-major slice of brightness values.
func brightnessPlane(img *image.NRGBA, workers int) []int {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	lum := make([]int, width*height)

	parallelRows(height, workers, func(start, end int) {
		for y := start; y < end; y++ {
			i := y * img.Stride
			for x := 0; x < width; x++ {
				lum[y*width+x] = int(Brightness(img.Pix[i], img.Pix[i+1], img.Pix[i+2]))
				i += 4
			}
		}
	})
	return lum
}
