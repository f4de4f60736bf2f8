package app

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a file-sink logger from the log_* settings. When logging
// is disabled it returns a nop logger so call sites need no nil checks.
func NewLogger(cfg Config) *zap.Logger {
	if !cfg.LogEnabled {
		return zap.NewNop()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	// lumberjack always appends; honor log_append=false by truncating any
	// existing file before the first write.
	if !cfg.LogAppend {
		_ = os.Truncate(cfg.LogFile, 0)
	}

	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxFileSizeMB,
		MaxBackups: cfg.LogRotationCount,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
