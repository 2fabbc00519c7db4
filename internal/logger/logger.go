package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

// Init replaces Log with a console logger. Debug enables debug level and caller info.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		// Keep the no-op logger, there is nowhere to report this.
		return
	}
	Log = l.Named("DodgeBall3D")
}

// Sync flushes buffered log entries. Call before the process exits.
func Sync() {
	_ = Log.Sync()
}
