package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
└─┐├┤ ├─┤│││└─┐├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image width reduction.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image, directory or URL")
	destination = flag.String("out", pipeName, "Destination image or directory")
	seams       = flag.Int("seams", 0, "Number of seams to remove")
	newWidth    = flag.Int("width", 0, "New width (used when -seams is not set)")
	percentage  = flag.Bool("perc", false, "Reduce the width by the percentage given in -width")
	blurRadius  = flag.Float64("blur", 0, "Blur radius applied before the energy computation")
	workers     = flag.Int("workers", runtime.NumCPU(), "Number of goroutines used inside a carving iteration")
	conc        = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	energyPath  = flag.String("energy", "", "Save the normalized energy map of the source image")
	seamMapPath = flag.String("seammap", "", "Save the source image with the removed seams painted over")
	statsPath   = flag.String("stats", "", "Save a plot of the removed seams energy")
	seamColor   = flag.String("color", seamcarver.DefaultSeamColor, "Seam color used by the seam map")
	debug       = flag.Bool("debug", false, "Log every removed seam")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *seams <= 0 && *newWidth <= 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide the number of seams, a new width or a percentage!", utils.ErrorMessage))
	}

	proc := &seamcarver.Processor{
		Seams:       *seams,
		NewWidth:    *newWidth,
		Percentage:  *percentage,
		BlurRadius:  *blurRadius,
		Workers:     *workers,
		SeamColor:   *seamColor,
		Debug:       *debug,
		EnergyPath:  *energyPath,
		SeamMapPath: *seamMapPath,
		StatsPath:   *statsPath,
	}

	op := &seamcarver.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *conc,
	}

	if err := proc.Execute(op); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("\nError carving the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
