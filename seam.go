package seamcarver

import (
	"fmt"

	"github.com/esimov/seamcarver/utils"
)

// Seam is a connected top to bottom path holding one column index per image row.
type Seam []int

// SeamError reports a seam which cannot be removed from the image without corrupting it.
type SeamError struct {
	Row    int
	Col    int
	Reason string
}

func (e *SeamError) Error() string {
	if e.Row < 0 {
		return "invalid seam: " + e.Reason
	}
	return fmt.Sprintf("invalid seam at row %d, column %d: %s", e.Row, e.Col, e.Reason)
}

// Validate checks that the seam has one column per row, every column falls inside the image
// and consecutive rows differ by at most one column.
func (s Seam) Validate(width, height int) error {
	if len(s) != height {
		return &SeamError{
			Row:    -1,
			Reason: fmt.Sprintf("seam length %d does not match the image height %d", len(s), height),
		}
	}
	for y, x := range s {
		if x < 0 || x >= width {
			return &SeamError{Row: y, Col: x, Reason: fmt.Sprintf("column out of range [0, %d)", width)}
		}
		if y > 0 && utils.Abs(x-s[y-1]) > 1 {
			return &SeamError{Row: y, Col: x, Reason: fmt.Sprintf("not connected to column %d", s[y-1])}
		}
	}
	return nil
}

// FindSeam returns the vertical seam of lowest energy together with its energy sum.
//
// Every column of the first row is used as a starting point of a greedy descent: from each
// pixel the walk moves to the pixel straight below, unless the pixel below-left or below-right
// has a strictly lower energy. The walk with the smallest energy sum wins, ties going to the
// leftmost starting column. This is a local heuristic and not the globally optimal seam.
//
// The starting columns are evaluated by at most workers goroutines. The grid must not be empty.
func FindSeam(e *EnergyGrid, workers int) (Seam, float64) {
	sums := make([]float64, e.Width)
	parallelRows(e.Width, workers, func(start, end int) {
		for x := start; x < end; x++ {
			sums[x] = e.descend(x, nil)
		}
	})

	best := 0
	for x := 1; x < e.Width; x++ {
		if sums[x] < sums[best] {
			best = x
		}
	}

	seam := make(Seam, e.Height)
	e.descend(best, seam)
	return seam, sums[best]
}

// descend walks down the grid starting from column x of the first row and returns the
// energy sum of the visited pixels. The visited columns are stored in path if it is not nil.
func (e *EnergyGrid) descend(x int, path Seam) float64 {
	var sum float64
	for y := 0; y < e.Height; y++ {
		if path != nil {
			path[y] = x
		}
		sum += e.At(x, y)
		if y == e.Height-1 {
			break
		}

		next := x
		if x > 0 && e.At(x-1, y+1) < e.At(next, y+1) {
			next = x - 1
		}
		if x < e.Width-1 && e.At(x+1, y+1) < e.At(next, y+1) {
			next = x + 1
		}
		x = next
	}
	return sum
}
