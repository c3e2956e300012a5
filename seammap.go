package seamcarver

import (
	"image"
	"image/color"
	"image/draw"
)

// seamMap keeps track of the source columns removed by the carver, so the seams
// can be displayed over the original image once the carving is done.
type seamMap struct {
	width   int
	cols    [][]int // source column of every pixel still present in the shrinking image
	removed []bool
}

func newSeamMap(width, height int) *seamMap {
	cols := make([][]int, height)
	for y := range cols {
		cols[y] = make([]int, width)
		for x := range cols[y] {
			cols[y][x] = x
		}
	}
	return &seamMap{
		width:   width,
		cols:    cols,
		removed: make([]bool, width*height),
	}
}

// add records a seam expressed in the coordinates of the current, already shrunk image.
// The seam must have been validated against the current image.
func (m *seamMap) add(seam Seam) {
	for y, x := range seam {
		row := m.cols[y]
		m.removed[y*m.width+row[x]] = true
		m.cols[y] = append(row[:x], row[x+1:]...)
	}
}

// render paints the removed pixels over a copy of the source image.
func (m *seamMap) render(src *image.NRGBA, col color.Color) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	for i, ok := range m.removed {
		if ok {
			dst.SetNRGBA(i%m.width, i/m.width, c)
		}
	}
	return dst
}
