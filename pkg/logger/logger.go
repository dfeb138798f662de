package logger

import (
	"time"

	"github.com/lintang-b-s/karger-min-cut/pkg/logger/config"
	myZap "github.com/lintang-b-s/karger-min-cut/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	LOG_LEVEL_KEY       = "log.level"
	LOG_TIME_FORMAT_KEY = "log.time_format"
)

// New. build the application logger from v. LOG_LEVEL follows zap numbering (-1 debug ... 5 fatal).
func New(v *viper.Viper) (*zap.Logger, error) {
	v.SetDefault(LOG_LEVEL_KEY, config.INFO_LEVEL)
	v.SetDefault(LOG_TIME_FORMAT_KEY, time.RFC3339Nano)

	cfg := config.Configuration{
		Level:      v.GetInt(LOG_LEVEL_KEY),
		TimeFormat: v.GetString(LOG_TIME_FORMAT_KEY),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	log, err := myZap.New(cfg)

	if err != nil {
		return nil, err
	}

	return log, nil
}
