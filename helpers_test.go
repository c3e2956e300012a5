package seamcarver

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

// newFilledImage returns an image filled up with an uniform color.
func newFilledImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// newGrayNoiseImage returns an image of random gray pixels, which never match a saturated seam color.
func newGrayNoiseImage(width, height int, seed int64) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(rnd.Intn(200))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

// newNoiseImage returns an image of random colored pixels.
func newNoiseImage(width, height int, seed int64) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rnd.Read(img.Pix)
	return img
}

// gridFromRows builds an energy grid from a slice of rows.
func gridFromRows(rows [][]float64) *EnergyGrid {
	e := NewEnergyGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(e.Energy[y*e.Width:], row)
	}
	return e
}

// randomGrid returns an energy grid of random values.
func randomGrid(width, height int, seed int64) *EnergyGrid {
	rnd := rand.New(rand.NewSource(seed))
	e := NewEnergyGrid(width, height)
	for i := range e.Energy {
		// A coarse value range makes ties between neighbors frequent.
		e.Energy[i] = float64(rnd.Intn(8))
	}
	return e
}
