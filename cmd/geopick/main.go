// Command geopick runs point picks, box selections and index summaries against YAML point scenes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/beetlebugorg/geofeature/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// ExitErrors were already reported in the requested format.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
