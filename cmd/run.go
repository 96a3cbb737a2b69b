package main

import (
	"context"
	"fmt"
	"urlstats/internal/collector"
	"urlstats/pkg/fileio"
	"urlstats/pkg/logger"
	"urlstats/pkg/metrics"
	"urlstats/pkg/profile"
	"urlstats/pkg/serrors"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// runOptions are the resolved settings of one invocation.
type runOptions struct {
	top         int
	input       string
	output      string
	metricsFile string
	cpuProfile  string
}

// run scans opts.input and writes the report to opts.output. The input is
// opened and scanned before the output is touched, so a bad input never
// truncates an existing report.
func run(ctx context.Context, fs afero.Fs, opts runOptions) (err error) {
	ctx = logger.WithFields(ctx, zap.String("runID", uuid.NewString()))

	if opts.top < 0 {
		return serrors.With(serrors.ErrBadArgument, "size of top must not be negative, got %d", opts.top)
	}

	stopProfile, err := profile.StartCPU(fs, opts.cpuProfile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stopProfile(); stopErr != nil {
			logger.Warn(ctx, "could not stop cpu profile", zap.Error(stopErr))
		}
	}()

	logger.Info(ctx, "collecting url statistics...",
		zap.String("input", opts.input),
		zap.String("output", opts.output),
		zap.Int("top", opts.top))

	m := metrics.NewScan()
	options := collector.DefaultOptions()
	options.Metrics = m
	c := collector.New(options)

	in, err := fileio.OpenInput(fs, opts.input)
	if err != nil {
		return err
	}
	defer in.Close() //nolint: errcheck

	c.SetInput(opts.input, in)
	if err := c.Scan(ctx); err != nil {
		return fmt.Errorf("could not collect statistics: %w", err)
	}

	out, err := fileio.CreateOutput(fs, opts.output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = serrors.Wrap(serrors.ErrIO, closeErr, "could not close output file")
		}
	}()

	if err := c.WriteReport(ctx, out, opts.top); err != nil {
		return fmt.Errorf("could not write statistics: %w", err)
	}

	if opts.metricsFile != "" {
		if err := m.WriteTextfile(opts.metricsFile); err != nil {
			logger.Warn(ctx, "could not write metrics", zap.String("path", opts.metricsFile), zap.Error(err))
		}
	}

	logger.Info(ctx, "statistics written", zap.String("output", opts.output))

	return nil
}
