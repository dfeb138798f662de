package zap

import (
	"github.com/lintang-b-s/karger-min-cut/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New. console logger on stderr so stdout stays free for results.
func New(cfg config.Configuration) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.DisableStacktrace = true

	return zapCfg.Build()
}
