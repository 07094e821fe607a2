package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// StatsResult is the output of the stats command.
type StatsResult struct {
	Elements  int     `json:"elements"`
	Indexed   int     `json:"indexed"`
	Excluded  []int   `json:"excluded"`
	MaxRadius float64 `json:"max_radius"`
	Index     string  `json:"index"`
}

// WriteText writes the human-readable form.
func (r *StatsResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"elements:   %d\nindexed:    %d\nexcluded:   %v\nmax radius: %g\nindex:      %s\n",
		r.Elements, r.Indexed, r.Excluded, r.MaxRadius, r.Index)
	return err
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Describe the spatial index built for a scene",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd, scenePath)
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "scene file (YAML)")
	_ = cmd.MarkFlagRequired("scene")

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command, scenePath string) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	f, err := loadFeature(opts, scenePath, cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeScene, "failed to load scene", err)
	}

	stats, err := f.IndexStats()
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeQuery, "index build failed", err)
	}

	return formatter.Success(&StatsResult{
		Elements:  f.Len(),
		Indexed:   stats.Indexed,
		Excluded:  append([]int{}, stats.Excluded...),
		MaxRadius: stats.MaxRadius,
		Index:     stats.Kind.String(),
	})
}
