package logging

import (
    "fmt"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// New builds the process logger: JSON in production, console otherwise.
func New(env, level string) (*zap.Logger, error) {
    var cfg zap.Config
    if env == "production" {
        cfg = zap.NewProductionConfig()
    } else {
        cfg = zap.NewDevelopmentConfig()
        cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
    }
    if level != "" {
        lvl, err := zapcore.ParseLevel(level)
        if err != nil {
            return nil, fmt.Errorf("log level %q: %w", level, err)
        }
        cfg.Level = zap.NewAtomicLevelAt(lvl)
    }
    return cfg.Build()
}
