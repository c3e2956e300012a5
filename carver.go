package seamcarver

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Carver holds the state of a single carving iteration: the energy map
// of the current image and the seam selected for removal.
type Carver struct {
	Width  int
	Height int
	Energy *EnergyGrid
	Seam   Seam
	Cost   float64
}

// NewCarver initializes a new carver for an image of the given size.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
	}
}

// ComputeSeams computes the energy map of the image. When the processor has a blur radius set,
// the energy is computed over a smoothed copy of the image, the image itself is not modified.
func (c *Carver) ComputeSeams(p *Processor, img *image.NRGBA) (*EnergyGrid, error) {
	if c.Width < 1 || c.Height < 1 {
		return nil, ErrEmptyImage
	}
	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != c.Width || dy != c.Height {
		return nil, fmt.Errorf("carver size %dx%d does not match the image size %dx%d", c.Width, c.Height, dx, dy)
	}

	src := img
	if p.BlurRadius > 0 {
		src = imaging.Blur(img, p.BlurRadius)
	}
	c.Energy = ComputeEnergy(src, p.Workers)

	return c.Energy, nil
}

// FindLowestEnergySeams selects the seam to be removed from the last computed energy map.
func (c *Carver) FindLowestEnergySeams(p *Processor) Seam {
	c.Seam, c.Cost = FindSeam(c.Energy, p.Workers)
	return c.Seam
}
