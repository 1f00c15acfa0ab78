package logger

import (
	"fmt"

	"github.com/MikeRez0/payopt/internal/adapter/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Both modes write to stderr, stdout
// belongs to the spending report.
func NewLogger(conf *config.App) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level: %w", err)
	}

	var cfg zap.Config
	switch conf.Mode {
	case config.AppModeDevelop:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case config.AppModeProduction:
		cfg = zap.NewProductionConfig()
		// every unpaid order warning matters, do not sample them away
		cfg.Sampling = nil
	default:
		return nil, fmt.Errorf("unknown app mode %q", conf.Mode)
	}
	cfg.Level = lvl

	return cfg.Build()
}
