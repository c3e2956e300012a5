package seamcarver

import (
	"image"
	"math"
)

// EnergyGrid holds the per pixel energy values of an image in row-major order.
type EnergyGrid struct {
	Width  int
	Height int
	Energy []float64
}

// NewEnergyGrid allocates a zero valued energy grid.
func NewEnergyGrid(width, height int) *EnergyGrid {
	return &EnergyGrid{
		Width:  width,
		Height: height,
		Energy: make([]float64, width*height),
	}
}

// At returns the energy of the pixel at (x, y).
func (e *EnergyGrid) At(x, y int) float64 {
	return e.Energy[y*e.Width+x]
}

// ComputeEnergy builds the energy grid of the image. The energy of a pixel is the magnitude
// of the central difference of its horizontal and vertical neighbors brightness:
//
//	dx = right - left
//	dy = bottom - top
//	energy = sqrt(dx² + dy²)
//
// Neighbors falling outside of the image are counted as 0, which means that the edge
// pixels get a one-sided gradient. The rows are processed by at most workers goroutines.
func ComputeEnergy(img *image.NRGBA, workers int) *EnergyGrid {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	lum := brightnessPlane(img, workers)
	e := NewEnergyGrid(width, height)

	parallelRows(height, workers, func(start, end int) {
		for y := start; y < end; y++ {
			row := y * width
			for x := 0; x < width; x++ {
				var left, right, top, bottom int
				if x > 0 {
					left = lum[row+x-1]
				}
				if x < width-1 {
					right = lum[row+x+1]
				}
				if y > 0 {
					top = lum[row-width+x]
				}
				if y < height-1 {
					bottom = lum[row+width+x]
				}
				dx, dy := right-left, bottom-top
				e.Energy[row+x] = math.Sqrt(float64(dx*dx + dy*dy))
			}
		}
	})
	return e
}
