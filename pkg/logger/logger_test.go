package logger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"urlstats/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
			debug:       true,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
			debug:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(logger.Options{Environment: tt.environment})
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestSetupWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "urlstats.log")
	logger.Setup(logger.Options{
		Environment:    logger.ProductionEnvironment,
		File:           logFile,
		FileMaxSizeMB:  1,
		FileMaxBackups: 1,
	})
	t.Cleanup(func() { logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment}) })

	ctx := context.Background()
	logger.Info(ctx, "written to file", zap.String("key", "value"))
	logger.Sync(ctx)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "written to file")
}

func TestWithLoggerAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	require.Equal(t, zap.New(core).Core(), logger.Get(ctx).Core())

	ctx = logger.WithFields(ctx, zap.String("runID", "abc"))
	logger.Warn(ctx, "something odd", zap.Int("line", 3))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "something odd", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["runID"])
	require.EqualValues(t, 3, entries[0].ContextMap()["line"])
}

func TestLoggingFunctions(t *testing.T) {
	logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment})
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
