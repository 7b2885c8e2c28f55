/*
Package snap manipulates raster images: loading, geometric transforms,
resizing and saving, with a content-aware resizing engine at its core.
The carver computes a per-pixel dual-gradient energy, runs a dynamic
program over the whole image to find the globally cheapest removable seam
and restructures the pixel grid one seam at a time.

The package ships a command line interface with one subcommand per
operation. To check the supported commands type:

	$ snap --help

The API can also be embedded directly:

	package main

	import (
		"log"

		"github.com/tswan-dev/snap"
	)

	func main() {
		img, err := snap.Open("in.ppm")
		if err != nil {
			log.Fatal(err)
		}

		carver := snap.NewCarver()
		if err := carver.SeamCarve(img, 800, 600); err != nil {
			log.Fatal(err)
		}

		if err := snap.Save(img, "out.png"); err != nil {
			log.Fatal(err)
		}
	}
*/
package snap
