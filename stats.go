package seamcarver

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveSeamPlot plots the energy of every removed seam against its removal order and saves
// the chart to path. The image format follows the file extension (png, svg, pdf...).
// A rising curve means that the carver started to cut through the important image parts.
func SaveSeamPlot(energies []float64, path string) error {
	if len(energies) == 0 {
		return errors.New("no seam energy to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Seam energy (%d seams, mean %.2f)",
		len(energies), floats.Sum(energies)/float64(len(energies)))
	p.X.Label.Text = "Seam"
	p.Y.Label.Text = "Energy"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(energies))
	for i, e := range energies {
		pts[i] = plotter.XY{X: float64(i + 1), Y: e}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to create line: %w", err)
	}
	line.Color = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
