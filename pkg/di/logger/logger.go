package logger_di

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide structured logger. Some codebases wire this
// through a dedicated pkg/logger/config + pkg/logger/zap pair; here zap's
// own zap.Config plays the same role directly, read the same way from
// viper.
func New() (*zap.Logger, func(), error) {
	viper.SetDefault("LOG_LEVEL", "info")

	var level zapcore.Level
	if err := level.Set(viper.GetString("LOG_LEVEL")); err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
	}

	return log, cleanup, nil
}
