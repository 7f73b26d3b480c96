// Package logger owns the process-wide zap logger. The terminal belongs to the
// UI, so everything is written to a file under the state directory.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kobzarvs/clipvox/internal/config"
)

// maxLogSize is the size at which the previous log is rotated to <path>.1.
const maxLogSize = 4 << 20

var (
	L       *zap.Logger
	logFile *os.File
)

// Init opens the log file and installs the global logger. clipvox usually
// runs for a whole session, so the log is appended to across runs and
// rotated once it grows past maxLogSize.
func Init(debug bool) error {
	logPath, err := getLogPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}
	rotate(logPath)

	logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		level,
	)
	L = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	L.Info("logger initialized",
		zap.String("path", logPath),
		zap.Bool("debug", debug),
		zap.Int("pid", os.Getpid()))
	return nil
}

// Named returns a child of the global logger for one subsystem (history,
// speech, translate, ...). Before Init it returns a no-op logger, which
// keeps packages usable from tests.
func Named(name string) *zap.Logger {
	if L == nil {
		return zap.NewNop()
	}
	return L.Named(name)
}

// Close flushes pending entries and closes the log file. The global logger
// is reset so that later Named calls get a no-op logger.
func Close() {
	if L != nil {
		_ = L.Sync()
		L = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() < maxLogSize {
		return
	}
	_ = os.Rename(path, path+".1")
}

// getLogPath honours CLIPVOX_LOG_FILE, else <state dir>/clipvox.log.
func getLogPath() (string, error) {
	if v := os.Getenv("CLIPVOX_LOG_FILE"); v != "" {
		return v, nil
	}
	dir, err := config.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clipvox.log"), nil
}
