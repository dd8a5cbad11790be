package utils

import (
    "os"
    "path/filepath"
    "strings"
    "sync"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var (
    logger *zap.Logger
    once   sync.Once
)

// Logger returns the process-wide logger. Output is JSON on stdout, teed to
// LOG_FILE when set; LOG_LEVEL picks the minimum level (default info).
func Logger() *zap.Logger {
    once.Do(func() { logger = NewLogger(os.Getenv("LOG_FILE"), os.Getenv("LOG_LEVEL")) })
    return logger
}

func NewLogger(logFile, level string) *zap.Logger {
    lvl := ParseLevel(level)
    encCfg := zap.NewProductionEncoderConfig()
    encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
    enc := zapcore.NewJSONEncoder(encCfg)
    consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
    if logFile == "" {
        return zap.New(consoleCore)
    }
    _ = os.MkdirAll(filepath.Dir(logFile), 0o755)
    f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        l := zap.New(consoleCore)
        l.Warn("cannot open log file, logging to stdout only", zap.String("path", logFile), zap.Error(err))
        return l
    }
    fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
    return zap.New(zapcore.NewTee(fileCore, consoleCore))
}

// ParseLevel maps debug|info|warn|error to a zap level; anything else is info.
func ParseLevel(s string) zapcore.Level {
    var lvl zapcore.Level
    if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil || s == "" {
        return zapcore.InfoLevel
    }
    return lvl
}

// Env returns the value of key, or def when it is unset or empty.
func Env(key, def string) string {
    if v := os.Getenv(key); v != "" { return v }
    return def
}
