package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "slashpad.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logger       *zap.Logger
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error("error", zap.Error(err))
}

// Warn records a recovered fault together with the callback that produced it.
// These never reach the screen; the log file is the only trace.
func Warn(context string, err error) {
	if err == nil {
		return
	}
	current().Warn("recovered", zap.String("context", context), zap.Error(err))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	fields := []zap.Field{zap.String("event", event)}
	if payload != nil {
		fields = append(fields, zap.Any("payload", payload))
	}
	current().Debug("trace", fields...)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogFile
	}
	if logger != nil {
		_ = logger.Sync()
	}
	logPath = path
	logger = build(path)
}

// Sync flushes buffered entries.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
}

func current() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = build(logPath)
	}
	return logger
}

func build(path string) *zap.Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return zap.NewNop()
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	return zap.New(core)
}
