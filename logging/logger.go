// api/logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileName      = "api.log"
	errorLogFileName = "api_error.log"
)

var Log *zap.Logger = zap.NewNop()

// InitLogger writes JSON logs to stdout and <logDirPath>/api.log. Entries at
// error level and above are also kept in <logDirPath>/api_error.log.
// LOG_LEVEL overrides the default info level.
func InitLogger(logDirPath string) {
	if err := os.MkdirAll(logDirPath, 0o755); err != nil {
		panic(err)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zapcore.ParseLevel(v); err == nil {
			level.SetLevel(parsed)
		}
	}

	core, err := newCore(logDirPath, level)
	if err != nil {
		panic(err)
	}

	Log = zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(Log)
}

func newCore(logDirPath string, level zap.AtomicLevel) (zapcore.Core, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.CallerKey = "caller"
	encoderConfig.StacktraceKey = "stacktrace"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	logFile, _, err := zap.Open(filepath.Join(logDirPath, logFileName))
	if err != nil {
		return nil, err
	}
	errorFile, _, err := zap.Open(filepath.Join(logDirPath, errorLogFileName))
	if err != nil {
		return nil, err
	}

	errorsOnly := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.ErrorLevel && level.Enabled(l)
	})
	return zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
		zapcore.NewCore(encoder, logFile, level),
		zapcore.NewCore(encoder, errorFile, errorsOnly),
	), nil
}

// InitNopLogger discards all output; used by tests.
func InitNopLogger() {
	Log = zap.NewNop()
}

func Info(msg string, fields ...zap.Field) { Log.Info(msg, fields...) }

func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }

func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { Log.Warn(msg, fields...) }

func Fatal(msg string, fields ...zap.Field) { Log.Fatal(msg, fields...) }

// WithContext returns a child logger carrying fields on every entry.
func WithContext(fields ...zap.Field) *zap.Logger {
	return Log.With(fields...)
}

func Sync() error {
	return Log.Sync()
}
