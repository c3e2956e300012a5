/*
Package seamcarver is a content aware image width reduction library. It shrinks the source image
one column at a time by removing the vertical seam of lowest energy, where the energy of a pixel
is the gradient magnitude of its brightness.

The seam search is a greedy per-column descent and not the classic cumulative dynamic programming
approach: every start column is walked downwards, stepping to the lowest of the three pixels below,
and the walk with the smallest energy sum is removed.

The package provides a command line interface, supporting various flags for the carving operation.
To check the supported commands type:

	$ seamcarver --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/seamcarver"
	)

	func main() {
		p := &seamcarver.Processor{
			Seams:   120,
			Workers: 4,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error carving image: %s", err.Error())
		}
	}
*/
package seamcarver
