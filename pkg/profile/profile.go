// Package profile captures a CPU profile of a run for `go tool pprof`.
package profile

import (
	"fmt"
	"runtime/pprof"
	"urlstats/pkg/fileio"

	"github.com/spf13/afero"
)

// StartCPU starts CPU profiling into path and returns the function that stops
// profiling and closes the file. An empty path disables profiling.
func StartCPU(fs afero.Fs, path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}

	f, err := fileio.CreateOutput(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("could not start cpu profile: %w", err)
	}

	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("could not close cpu profile: %w", err)
		}

		return nil
	}, nil
}
