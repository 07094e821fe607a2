package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

// SelectResult is the output of the select command.
type SelectResult struct {
	Box     feature.Bounds `json:"box"`
	Indices []int          `json:"indices"`
	Labels  []string       `json:"labels"`
}

// WriteText writes the human-readable form.
func (r *SelectResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d element(s) in world box [%g, %g] x [%g, %g]\n",
		len(r.Indices), r.Box.MinX, r.Box.MaxX, r.Box.MinY, r.Box.MaxY)
	if err != nil {
		return err
	}
	return writeRows(w, r.Indices, r.Labels)
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	var scenePath string
	var box feature.Bounds

	cmd := &cobra.Command{
		Use:   "select",
		Short: "List elements positioned inside a world box",
		Long: `Select elements whose world position lies inside an inclusive box.

Footprint radii are ignored. An inverted box selects nothing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, cmd, scenePath, box)
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "scene file (YAML)")
	cmd.Flags().Float64Var(&box.MinX, "min-x", 0, "western edge")
	cmd.Flags().Float64Var(&box.MinY, "min-y", 0, "southern edge")
	cmd.Flags().Float64Var(&box.MaxX, "max-x", 0, "eastern edge")
	cmd.Flags().Float64Var(&box.MaxY, "max-y", 0, "northern edge")
	_ = cmd.MarkFlagRequired("scene")

	return cmd
}

func runSelect(opts *RootOptions, cmd *cobra.Command, scenePath string, box feature.Bounds) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	f, err := loadFeature(opts, scenePath, cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeScene, "failed to load scene", err)
	}

	indices, err := f.BoxSearch(
		feature.Point{X: box.MinX, Y: box.MinY},
		feature.Point{X: box.MaxX, Y: box.MaxY},
	)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeQuery, "select failed", err)
	}

	return formatter.Success(&SelectResult{
		Box:     box,
		Indices: append([]int{}, indices...),
		Labels:  labels(f, indices),
	})
}
