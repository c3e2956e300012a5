package seamcarver

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarver/utils"
)

// DefaultSeamColor is the color used for painting the removed seams.
const DefaultSeamColor = "#ff0000"

var (
	// ErrEmptyImage is returned when the image has no pixels to work with.
	ErrEmptyImage = errors.New("empty image")
	// ErrInvalidOptions is returned when the processor options cannot be applied to the image.
	ErrInvalidOptions = errors.New("invalid options")
)

// Logf is used for the debug output of the carving process. It defaults to log.Printf.
var Logf = log.Printf

// SetLogger replaces the debug logger. Passing nil mutes the debug output.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// Processor options
type Processor struct {
	// Seams is the number of seams to remove. It takes precedence over NewWidth.
	Seams int
	// NewWidth is the desired image width, or the percentage of columns
	// to be removed in case Percentage is set.
	NewWidth   int
	Percentage bool
	// BlurRadius smooths the image before computing the energy map. Zero disables it.
	BlurRadius float64
	// Workers is the number of goroutines used inside a single iteration.
	Workers   int
	SeamColor string
	Debug     bool

	EnergyPath  string
	SeamMapPath string
	StatsPath   string

	Spinner *utils.Spinner
}

// Result holds the outcome of the carving process.
type Result struct {
	// Image is the carved image.
	Image *image.NRGBA
	// Energy is the normalized energy map of the source image.
	Energy *image.Gray
	// SeamEnergies holds the energy sum of every removed seam, in removal order.
	SeamEnergies []float64
	// SeamMap is the source image with the removed pixels painted over.
	// It is only produced when a seam map path is given.
	SeamMap *image.NRGBA
}

// Carve is the main entry point for the width reduction. It removes the requested number
// of seams one by one, recomputing the energy map of the shrunk image after every removal.
// The number of seams is capped at the image width minus one, so the image never ends up empty.
func (p *Processor) Carve(src *image.NRGBA) (*Result, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	if src.Bounds().Min != (image.Point{}) {
		src = imaging.Clone(src)
	}
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	if width < 1 || height < 1 {
		return nil, ErrEmptyImage
	}

	n, err := p.seamCount(width)
	if err != nil {
		return nil, err
	}

	var (
		seams   *seamMap
		seamCol color.Color
	)
	if p.SeamMapPath != "" {
		seamCol, err = p.seamColor()
		if err != nil {
			return nil, err
		}
		seams = newSeamMap(width, height)
	}

	img := src
	res := &Result{SeamEnergies: make([]float64, 0, n)}

	c := NewCarver(width, height)
	if _, err := c.ComputeSeams(p, img); err != nil {
		return nil, err
	}
	res.Energy = c.Energy.Normalize()

	for i := 0; i < n; i++ {
		if i > 0 {
			c = NewCarver(img.Bounds().Dx(), height)
			if _, err := c.ComputeSeams(p, img); err != nil {
				return nil, fmt.Errorf("seam %d: %w", i+1, err)
			}
		}
		seam := c.FindLowestEnergySeams(p)

		img, err = RemoveSeam(img, seam, p.Workers)
		if err != nil {
			return nil, fmt.Errorf("seam %d: %w", i+1, err)
		}
		if seams != nil {
			seams.add(seam)
		}
		res.SeamEnergies = append(res.SeamEnergies, c.Cost)

		if p.Debug {
			Logf("seam %d/%d: start column %d, energy %.2f, new width %d", i+1, n, seam[0], c.Cost, img.Bounds().Dx())
		}
	}
	res.Image = img

	if seams != nil {
		res.SeamMap = seams.render(src, seamCol)
	}
	return res, nil
}

// seamCount returns the number of seams to be removed from an image of the given width.
func (p *Processor) seamCount(width int) (int, error) {
	var n int

	switch {
	case p.Seams < 0 || p.NewWidth < 0:
		return 0, fmt.Errorf("%w: negative seam count or width", ErrInvalidOptions)
	case p.Seams > 0:
		n = p.Seams
	case p.Percentage:
		if p.NewWidth > 100 {
			return 0, fmt.Errorf("%w: percentage should be between 0 and 100, got %d", ErrInvalidOptions, p.NewWidth)
		}
		n = int(float64(width) * float64(p.NewWidth) / 100)
	case p.NewWidth > 0:
		if p.NewWidth > width {
			return 0, fmt.Errorf("%w: new width %d exceeds the image width %d, enlargement is not supported",
				ErrInvalidOptions, p.NewWidth, width)
		}
		n = width - p.NewWidth
	}
	return utils.Min(n, width-1), nil
}

func (p *Processor) seamColor() (color.Color, error) {
	hex := p.SeamColor
	if hex == "" {
		hex = DefaultSeamColor
	}
	col, err := utils.HexToRGBA(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return col, nil
}
