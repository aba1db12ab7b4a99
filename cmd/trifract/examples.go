package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/esimov/trifract"
	"github.com/esimov/trifract/utils"
)

// presets are the two demonstration pictures: a shallow one with a
// gentle perturbation and a deep one with a strong perturbation.
var presets = []trifract.Config{
	{Passes: 2, Factor: 0.25, Width: 600, Height: 400, Name: "pic1"},
	{Passes: 6, Factor: 0.5, Width: 1200, Height: 800, Name: "pic2"},
}

func newExamplesCmd(o *options, stdout, stderr io.Writer) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Generate the demonstration pictures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, p := range presets {
				p.Dir = dir
				if err := run(p, o, stdout, stderr); err != nil {
					failed++
					reason := "saving fail"
					if trifract.IsCode(err, trifract.ErrCodeInvalidConfig) {
						reason = "creation fail"
					}
					fmt.Fprintf(stderr, "%s: %s\n", utils.ErrorStyle.Render(reason), trifract.UserMessage(err))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d examples failed", failed, len(presets))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory")

	return cmd
}
