package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CIDADES_LOG_LEVEL"

// LogFileEnvVar names the file diagnostic output is appended to.
// The TUI owns the terminal, so interactive sessions should log to a file.
const LogFileEnvVar = "CIDADES_LOG_FILE"

// Initialize creates a new logger with the specified level and output file.
// Empty arguments fall back to CIDADES_LOG_LEVEL and CIDADES_LOG_FILE.
// Without a level, logging is disabled (silent mode). Without a file,
// output goes to stderr.
func Initialize(level, file string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if file == "" {
		file = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	output := "stderr"
	encoding := "console"
	if file != "" {
		output = file
		encoding = "json"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if encoding == "console" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built.Named("cidades")

	return nil
}

// ParseLevel converts a level name into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks into the TUI
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFetchStarted logs the start of a request to the geography service
func LogFetchStarted(kind string, stateCode string, token uint64) {
	Info("Fetch started",
		zap.String("kind", kind),
		zap.String("state", stateCode),
		zap.Uint64("token", token),
	)
}

// LogFetchFinished logs a successful response
func LogFetchFinished(kind string, stateCode string, token uint64, count int) {
	Info("Fetch finished",
		zap.String("kind", kind),
		zap.String("state", stateCode),
		zap.Uint64("token", token),
		zap.Int("count", count),
	)
}

// LogFetchFailed logs a failed request with the underlying error
func LogFetchFailed(kind string, stateCode string, token uint64, err error) {
	Error("Fetch failed",
		zap.String("kind", kind),
		zap.String("state", stateCode),
		zap.Uint64("token", token),
		zap.Error(err),
	)
}

// LogCacheHit logs a selection served from the city cache
func LogCacheHit(stateCode string, count int) {
	Debug("City cache hit",
		zap.String("state", stateCode),
		zap.Int("count", count),
	)
}

// LogStaleResponse logs a response that arrived after its selection changed
func LogStaleResponse(kind string, stateCode string, token uint64, current uint64) {
	Debug("Discarding stale response",
		zap.String("kind", kind),
		zap.String("state", stateCode),
		zap.Uint64("token", token),
		zap.Uint64("current_token", current),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
