// Package cli implements the geopick commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/geofeature/internal/scene"
	"github.com/beetlebugorg/geofeature/pkg/feature"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Index   string // "" keeps the scene's index kind
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the geopick CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "geopick",
		Short: "Hit-test point scenes",
		Long:  "Load YAML point scenes and run point picks, box selections and index statistics against them.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Index != "" {
				if _, err := feature.ParseIndexKind(opts.Index); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log index builds and queries to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Index, "index", "", "spatial index (kdtree|rtree|linear); default from scene")

	cmd.AddCommand(NewPickCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadFeature loads a scene and builds its point feature with the global
// index and logging flags applied.
func loadFeature(opts *RootOptions, path string, cmd *cobra.Command) (*feature.PointFeature, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	fopts, err := featureOptions(opts, s, cmd)
	if err != nil {
		return nil, err
	}
	return s.Feature(fopts), nil
}

// featureOptions applies the global flags on top of a scene's settings.
func featureOptions(opts *RootOptions, s *scene.Scene, cmd *cobra.Command) (feature.Options, error) {
	fopts := feature.DefaultOptions()
	fopts.IndexKind = s.IndexKind()
	if opts.Index != "" {
		kind, err := feature.ParseIndexKind(opts.Index)
		if err != nil {
			return fopts, err
		}
		fopts.IndexKind = kind
	}
	if opts.Verbose {
		fopts.Logger = feature.NewWriterLogger(cmd.ErrOrStderr(), slog.LevelDebug)
	}
	return fopts, nil
}

// labels returns the scene label of each index, or "-" for unlabelled points.
func labels(f *feature.PointFeature, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = "-"
		d, err := f.Datum(idx)
		if err != nil {
			continue
		}
		if p, ok := d.(scene.Point); ok && p.Label != "" {
			out[i] = p.Label
		}
	}
	return out
}
