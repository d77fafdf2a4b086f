package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is a file path; stdout when empty.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	sink := "stdout"
	if cfg.Sink != "" {
		sink = cfg.Sink
	}
	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(cfg.LogLevel),
		Development:       cfg.LogLevel == zapcore.DebugLevel,
		DisableStacktrace: cfg.LogLevel != zapcore.DebugLevel,
		Encoding:          "json",
		EncoderConfig:     encoderConfig(),
		OutputPaths:       []string{sink},
		ErrorOutputPaths:  []string{"stderr"},
	}
	log, err := zcfg.Build()
	if err != nil {
		log = zap.NewExample()
		log.Warn("logger build", zap.Error(err))
	}
	return log.Named(name)
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	return ec
}
