// Package logger provides structured logging using zap.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger. It discards everything until Init is called.
var Log = zap.NewNop()

// Sugar is the sugared form of Log.
var Sugar = Log.Sugar()

// FileConfig holds rotating file output settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation defaults for path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Options selects where log lines go.
type Options struct {
	Level string
	File  FileConfig
	// Console writes to stdout. Leave it off while a terminal UI owns the
	// screen.
	Console bool
}

// InitWithOptions installs a logger built from opts. With neither console
// nor file output the logger discards everything.
func InitWithOptions(opts Options) error {
	lvl := parseLevel(opts.Level)

	var cores []zapcore.Core
	if opts.Console {
		enc := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.TimeEncoderOfLayout("15:04:05"),
			zapcore.CapitalColorLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))
	}
	if opts.File.Path != "" {
		w := &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
			LocalTime:  true,
		}
		enc := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.ISO8601TimeEncoder,
			zapcore.CapitalLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()
	return nil
}

func encoderConfig(t zapcore.TimeEncoder, l zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       t,
		EncodeLevel:      l,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

// parseLevel converts a level name to zapcore.Level; unknown names mean info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Named returns a child of Log tagged with component.
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

// Debug logs at debug level.
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs at info level.
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Error logs at error level.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}
