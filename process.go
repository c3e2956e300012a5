package seamcarver

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// Process decodes the source image, carves it and encodes the result into the writer.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
// The optional energy map, seam map and statistics outputs are saved once the image is encoded.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := Decode(r)
	if err != nil {
		return err
	}

	res, err := p.Carve(img)
	if err != nil {
		return err
	}

	if err := Encode(w, res.Image); err != nil {
		return fmt.Errorf("could not encode the carved image: %w", err)
	}
	return p.saveOutputs(res)
}

// saveOutputs writes the visualization files requested through the processor options.
func (p *Processor) saveOutputs(res *Result) error {
	if p.EnergyPath != "" {
		if err := imaging.Save(res.Energy, p.EnergyPath); err != nil {
			return fmt.Errorf("could not save the energy map: %w", err)
		}
	}
	if p.SeamMapPath != "" && res.SeamMap != nil {
		if err := imaging.Save(res.SeamMap, p.SeamMapPath); err != nil {
			return fmt.Errorf("could not save the seam map: %w", err)
		}
	}
	if p.StatsPath != "" {
		if len(res.SeamEnergies) == 0 {
			Logf("no seam has been removed, skipping the statistics plot")
			return nil
		}
		if err := SaveSeamPlot(res.SeamEnergies, p.StatsPath); err != nil {
			return fmt.Errorf("could not save the seam statistics: %w", err)
		}
	}
	return nil
}
