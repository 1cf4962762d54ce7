package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(logger)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	// levels are gated here, let everything through zap
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Sampling = nil
	return cfg.Build()
}

func Debug(format string, args ...interface{}) {
	if logLevel <= DEBUG {
		zap.S().Debugf(format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if logLevel <= INFO {
		zap.S().Infof(format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if logLevel <= WARNING {
		zap.S().Warnf(format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if logLevel <= ERROR {
		zap.S().Errorf(format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	zap.S().Fatalf(format, args...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = zap.L().Sync()
}

func SetLevel(level Level) {
	logLevel = level
}

func GetLevel() Level {
	return logLevel
}

// ParseLevel maps a config string to a Level. Unknown strings are INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fatal":
		return FATAL
	case "error":
		return ERROR
	case "warn", "warning":
		return WARNING
	case "debug":
		return DEBUG
	default:
		return INFO
	}
}

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	default:
		return "fatal"
	}
}

var logLevel = INFO
