// Package logger provides context-aware structured logging on top of zap.
// Output goes to stderr, and optionally to a rotated log file, so that
// stdout stays free for the diagnostics printed by the command line tool.
package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DevelopmentEnvironment logs human-readable console output at debug level.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment logs JSON at info level.
	ProductionEnvironment = "production"
)

// defaultLogger is the package-level logger instance used when no logger is found in context.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Options configure the default logger.
type Options struct {
	// Environment selects the encoder and level, see DevelopmentEnvironment and ProductionEnvironment.
	Environment string
	// File, when set, receives a copy of every entry. The file is rotated by size.
	File string
	// FileMaxSizeMB is the size in megabytes after which File is rotated.
	FileMaxSizeMB int
	// FileMaxBackups is the number of rotated files to keep.
	FileMaxBackups int
}

// Setup initializes the default logger based on the environment.
func Setup(opts Options) {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	if opts.Environment == ProductionEnvironment {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.FileMaxSizeMB,
			MaxBackups: opts.FileMaxBackups,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotated), level))
	}

	defaultLogger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// key is a custom type used as a context key for storing and retrieving logger instances.
type key struct{}

// Get retrieves a logger from the provided context.
// If no logger is found in the context, it returns the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger creates a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields creates a new context with a logger that includes the specified fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug checks if the logger in the context is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Sync flushes the logger in the context.
func Sync(ctx context.Context) {
	_ = Get(ctx).Sync()
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
