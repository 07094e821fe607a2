package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

// PickResult is the output of the pick command.
type PickResult struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Indices []int    `json:"indices"`
	Labels  []string `json:"labels"`
}

// WriteText writes the human-readable form.
func (r *PickResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d element(s) at display (%g, %g)\n", len(r.Indices), r.X, r.Y); err != nil {
		return err
	}
	return writeRows(w, r.Indices, r.Labels)
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	var scenePath string
	var x, y float64

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "List elements whose footprint covers a display point",
		Long: `Pick elements at a display-space point.

An element is picked when the display distance from its projected position
to the point is at most its radius, plus its stroke width when stroked.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(rootOpts, cmd, scenePath, feature.Point{X: x, Y: y})
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "scene file (YAML)")
	cmd.Flags().Float64Var(&x, "x", 0, "display x in pixels")
	cmd.Flags().Float64Var(&y, "y", 0, "display y in pixels")
	_ = cmd.MarkFlagRequired("scene")

	return cmd
}

func runPick(opts *RootOptions, cmd *cobra.Command, scenePath string, at feature.Point) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	f, err := loadFeature(opts, scenePath, cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeScene, "failed to load scene", err)
	}

	hit, err := f.PointSearch(at)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeQuery, "pick failed", err)
	}

	return formatter.Success(&PickResult{
		X:       at.X,
		Y:       at.Y,
		Indices: append([]int{}, hit.Indices...),
		Labels:  labels(f, hit.Indices),
	})
}

func writeRows(w io.Writer, indices []int, labels []string) error {
	for i, idx := range indices {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", idx, labels[i]); err != nil {
			return err
		}
	}
	return nil
}
