package seamcarver

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize maps the energy values linearly onto the [0, 255] grayscale range,
// the lowest energy becoming black and the highest one white.
// A grid of uniform energy has no range to scale, so it is rendered completely black.
func (e *EnergyGrid) Normalize() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, e.Width, e.Height))
	if len(e.Energy) == 0 {
		return dst
	}

	lo, hi := floats.Min(e.Energy), floats.Max(e.Energy)
	if hi == lo {
		return dst
	}

	for y := 0; y < e.Height; y++ {
		for x := 0; x < e.Width; x++ {
			gray := math.Round(255 * (e.At(x, y) - lo) / (hi - lo))
			dst.Pix[y*dst.Stride+x] = uint8(gray)
		}
	}
	return dst
}
