package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/geofeature/internal/scene"
)

// SceneSummary describes the index built for one scanned scene.
type SceneSummary struct {
	Path     string `json:"path"`
	Index    string `json:"index"`
	Elements int    `json:"elements"`
	Indexed  int    `json:"indexed"`
	Excluded int    `json:"excluded"`
}

// ScanResult is the output of the scan command.
type ScanResult struct {
	Scenes []SceneSummary `json:"scenes"`
	Failed []string       `json:"failed,omitempty"`
}

// WriteText writes the human-readable form.
func (r *ScanResult) WriteText(w io.Writer) error {
	for _, s := range r.Scenes {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d elements\t%d indexed\t%d excluded\n",
			s.Path, s.Index, s.Elements, s.Indexed, s.Excluded); err != nil {
			return err
		}
	}
	for _, msg := range r.Failed {
		if _, err := fmt.Fprintf(w, "failed: %s\n", msg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d scene(s) scanned, %d failed\n", len(r.Scenes), len(r.Failed))
	return err
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	var workers int
	var failFast bool

	cmd := &cobra.Command{
		Use:           "scan SCENE...",
		Short:         "Load many scenes in parallel and summarize their indexes",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, cmd, args, workers, failFast)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "parallel loaders (0 = number of CPUs)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first scene that fails to load")

	return cmd
}

func runScan(opts *RootOptions, cmd *cobra.Command, paths []string, workers int, failFast bool) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	loadOpts := scene.DefaultLoadOptions()
	loadOpts.Workers = workers
	loadOpts.SkipErrors = !failFast
	if opts.Verbose {
		loadOpts.ErrorLog = cmd.ErrOrStderr()
	}

	loaded, errs := scene.LoadAll(paths, loadOpts)
	if failFast && len(errs) > 0 {
		return formatter.Fail(ExitCommandError, ErrCodeScene, "failed to load scene", errs[0])
	}

	result := &ScanResult{Scenes: make([]SceneSummary, 0, len(loaded))}
	for _, err := range errs {
		result.Failed = append(result.Failed, err.Error())
	}

	for _, l := range loaded {
		fopts, err := featureOptions(opts, l.Scene, cmd)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeScene, "invalid index", err)
		}
		f := l.Scene.Feature(fopts)

		stats, err := f.IndexStats()
		if err != nil {
			err = fmt.Errorf("%s: %w", l.Path, err)
			errs = append(errs, err)
			result.Failed = append(result.Failed, err.Error())
			continue
		}
		result.Scenes = append(result.Scenes, SceneSummary{
			Path:     l.Path,
			Index:    stats.Kind.String(),
			Elements: f.Len(),
			Indexed:  stats.Indexed,
			Excluded: len(stats.Excluded),
		})
	}

	if err := formatter.Success(result); err != nil {
		return err
	}
	if len(errs) > 0 {
		return WrapExitError(ExitFailure, fmt.Sprintf("%d scene(s) failed", len(errs)), errors.Join(errs...))
	}
	return nil
}
