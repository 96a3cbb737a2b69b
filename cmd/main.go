// Package main provides the CLI entrypoint of urlstats. It scans a text
// corpus for http and https URLs and writes the most frequent domains and
// paths to a report file.
//
// Usage:
//
//	urlstats [-n K] [input] [output]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"urlstats/internal/config"
	"urlstats/pkg/logger"
	"urlstats/pkg/serrors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCommand builds the command tree. Files are resolved on fs and
// diagnostics go to stdout.
func newRootCommand(fs afero.Fs, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlstats [input] [output]",
		Short: "Counts the most frequent URL domains and paths in a text file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return serrors.With(serrors.ErrBadArgument, "expected at most 2 arguments, got %d", len(args))
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			logger.Setup(logger.Options{
				Environment:    cfg.Environment,
				File:           cfg.Log.File,
				FileMaxSizeMB:  cfg.Log.MaxSizeMB,
				FileMaxBackups: cfg.Log.MaxBackups,
			})

			opts := runOptions{
				top:         cfg.Stats.TopSize,
				input:       cfg.Stats.InputPath,
				output:      cfg.Stats.OutputPath,
				metricsFile: cfg.MetricsFile,
				cpuProfile:  cfg.CPUProfile,
			}
			if cmd.Flags().Changed("top") {
				opts.top, _ = cmd.Flags().GetInt("top")
			}
			if cmd.Flags().Changed("metrics-file") {
				opts.metricsFile, _ = cmd.Flags().GetString("metrics-file")
			}
			if cmd.Flags().Changed("cpuprofile") {
				opts.cpuProfile, _ = cmd.Flags().GetString("cpuprofile")
			}
			if len(args) > 0 {
				opts.input = args[0]
			}
			if len(args) > 1 {
				opts.output = args[1]
			}

			return run(cmd.Context(), fs, opts)
		},
	}

	cmd.Flags().IntP("top", "n", 5, "Number of entries in each top list")
	cmd.Flags().String("metrics-file", "", "Write prometheus metrics of the run to this file")
	cmd.Flags().String("cpuprofile", "", "Write a CPU profile of the run to this file")
	cmd.Flags().StringP("config", "c", "config.yml", "Config File Path")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return serrors.Wrap(serrors.ErrBadArgument, err, "invalid flag")
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	return cmd
}

// reportError prints err the way the tool always has: on stdout, without
// changing the exit code.
func reportError(w io.Writer, err error) {
	if serrors.IsArgument(err) {
		fmt.Fprintln(w, "Invalid argument:", err) //nolint: errcheck

		return
	}

	fmt.Fprintln(w, "Unknown error:", err) //nolint: errcheck
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	if err := newRootCommand(afero.NewOsFs(), os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Debug(ctx, "run failed", zap.Error(err))
		reportError(os.Stdout, err)
	}

	logger.Sync(ctx)
}
