// Package logging provides the package-level zap logger. The dashboard owns
// the terminal, so logs go to a rotated file under the data directory.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop().Sugar()

// Init routes the logger to <dataDir>/citysense.log. Safe to skip entirely;
// the default logger is a no-op.
func Init(dataDir string, debug bool) {
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dataDir, "citysense.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	})

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, level)
	log = zap.New(core).Sugar()
}

// Sync flushes any buffered entries.
func Sync() {
	_ = log.Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}
