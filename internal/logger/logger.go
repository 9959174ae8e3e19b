package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	devEnv  = "dev"
	prodEnv = "prod"
)

var logger = zap.NewNop()

type config interface {
	Env() string
	Level() string
	OutputPaths() []string
}

// Init replaces the no-op logger with one built from config.
func Init(cfg config) error {
	var zapCfg zap.Config
	switch cfg.Env() {
	case devEnv:
		zapCfg = zap.NewDevelopmentConfig()
	case prodEnv, "":
		zapCfg = zap.NewProductionConfig()
	default:
		return errors.Errorf("unknown log env %q", cfg.Env())
	}

	if cfg.Level() != "" {
		level, err := zapcore.ParseLevel(cfg.Level())
		if err != nil {
			return errors.Wrap(err, "parse log level")
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	if len(cfg.OutputPaths()) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths()
	}

	l, err := zapCfg.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	logger = l
	return nil
}

func Sync() {
	_ = logger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}
