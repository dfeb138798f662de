package config

import (
	"runtime"
	"strings"

	"github.com/lintang-b-s/karger-min-cut/pkg"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "KARGER"

// Config wraps the viper instance shared by the min cut runner, the reporter and the logger.
type Config struct {
	v *viper.Viper
}

// NewConfig. defaults, overridden by KARGER_* environment variables (KARGER_TRIALS_WORKERS, KARGER_LOG_LEVEL, ...)
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("trials.count", 0)
	v.SetDefault("trials.workers", runtime.NumCPU())
	v.SetDefault("trials.seed", 0)

	v.SetDefault("report.progress_every", pkg.PROGRESS_EVERY)
	v.SetDefault("report.output", "")

	v.SetDefault("graph.export", "")

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) Trials() int        { return c.v.GetInt("trials.count") }
func (c *Config) Workers() int       { return c.v.GetInt("trials.workers") }
func (c *Config) Seed() uint64       { return c.v.GetUint64("trials.seed") }
func (c *Config) ProgressEvery() int { return c.v.GetInt("report.progress_every") }
func (c *Config) Output() string     { return c.v.GetString("report.output") }

func (c *Config) GraphExport() string { return c.v.GetString("graph.export") }

func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) Viper() *viper.Viper {
	return c.v
}
