// Package logging holds the process-wide zap logger. The CLI configures it
// from --log-level; the purchase engine emits its support traces at debug.
package logging

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

var (
	mu sync.Mutex
	// output is the log file opened by the last Initialize, nil for std streams
	output *os.File
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level; unknown levels fall back to info
	Level string `json:"level" yaml:"level"`

	// Format is "console" or "json"
	Format string `json:"format" yaml:"format"`

	// Output is stdout, stderr (also when empty) or a file path
	Output string `json:"output" yaml:"output"`

	// Development adds caller and error stack traces
	Development bool `json:"development" yaml:"development"`
}

// DefaultConfig returns console logging at info level on stderr
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize replaces the global logger. The file opened by a previous
// call is flushed and closed once the new logger is installed.
func Initialize(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	return install(cfg)
}

// InitializeDefault sets up the logger with default configuration
func InitializeDefault() {
	_ = Initialize(DefaultConfig())
}

// Close flushes the logger, closes its output file if any and falls back
// to the default stderr logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	_ = install(DefaultConfig())
}

func install(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	sink, file, err := openOutput(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}

	var opts []zap.Option
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	next := zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, level), opts...)

	if Logger != nil {
		_ = Logger.Sync()
	}
	if output != nil {
		_ = output.Close()
	}
	Logger, output = next, file
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// openOutput returns the sink for dest and, for file paths, the file to
// close later
func openOutput(dest string) (zapcore.WriteSyncer, *os.File, error) {
	switch dest {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil, nil
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil, nil
	}
	file, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return zapcore.AddSync(file), file, nil
}

// With returns a child of the global logger carrying fields
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

// Enabled reports whether the global logger emits at level
func Enabled(level zapcore.Level) bool {
	return Logger.Core().Enabled(level)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func init() {
	InitializeDefault()
}
