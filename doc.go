/*
Package trifract generates fractal line art by recursively subdividing a triangle
into randomly perturbed children and draws the result as a raster image.

Starting from a single triangle spanning the canvas, every pass replaces each
triangle with three smaller ones. The new corners are the edge midpoints,
moved by a random offset proportional to the perturbation factor.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ trifract --help

Example to generate a picture with the default random source:

	package main

	import (
		"fmt"

		"github.com/esimov/trifract"
	)

	func main() {
		cfg := trifract.Config{
			Passes: 6,
			Factor: 0.5,
			Width:  1200,
			Height: 800,
			Name:   "triangles",
		}
		if err := trifract.GeneratePicture(cfg); err != nil {
			fmt.Printf("Error generating the picture: %s", err.Error())
		}
	}

Example to run the passes with a seeded source and inspect the triangles
without drawing them:

	g, err := trifract.NewGenerator(cfg, trifract.WithRand(trifract.NewMinStd(42)))
	if err != nil {
		fmt.Printf("Invalid field %q: %s", trifract.FieldOf(err), err.Error())
		return
	}
	for _, t := range g.Generate() {
		fmt.Println(t)
	}
*/
package trifract
