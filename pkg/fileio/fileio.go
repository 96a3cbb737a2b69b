// Package fileio opens the input and output resources of a run on an afero
// filesystem and maps failures to the serrors kinds. Callers hand the opened
// resources to the collector, which never opens files itself.
package fileio

import (
	"urlstats/pkg/serrors"

	"github.com/spf13/afero"
)

// OpenInput opens path for reading.
func OpenInput(fs afero.Fs, path string) (afero.File, error) {
	if path == "" {
		return nil, serrors.With(serrors.ErrEmptyPath, "Input file path is empty!")
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCannotOpenInput, err, "Can not open input file!")
	}
	if info.IsDir() {
		return nil, serrors.With(serrors.ErrCannotOpenInput, "Can not open input file! %s is a directory", path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCannotOpenInput, err, "Can not open input file!")
	}

	return f, nil
}

// CreateOutput creates or truncates path for writing.
func CreateOutput(fs afero.Fs, path string) (afero.File, error) {
	if path == "" {
		return nil, serrors.With(serrors.ErrEmptyPath, "Output file path is empty!")
	}

	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		return nil, serrors.With(serrors.ErrCannotOpenOutput, "Can not open output file! %s is a directory", path)
	}

	f, err := fs.Create(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCannotOpenOutput, err, "Can not open output file!")
	}

	return f, nil
}
