package config

import (
	"fmt"
	"path/filepath"

	"github.com/Isaloum/StepSyncAI-sub005/internal/app"
	"github.com/spf13/viper"
)

// Config holds the application configuration resolved from defaults, an
// optional YAML file, and STEPSYNC_* environment variables.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AnalyticsConfig carries the tunable constants of the analytics engine.
// The zero values are never used directly; Load seeds viper defaults.
type AnalyticsConfig struct {
	WindowDays  int     `mapstructure:"window_days"`
	HorizonDays int     `mapstructure:"horizon_days"`
	ZThreshold  float64 `mapstructure:"z_threshold"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from the given path, or from the default
// locations when path is empty. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stepsync")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if defaultPath, err := app.DefaultConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(defaultPath))
		}
	}

	setDefaults(v)

	v.SetEnvPrefix("STEPSYNC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return parseConfig(v)
		}
		// An explicit --config path that does not exist also falls back
		// to defaults rather than failing the whole invocation.
		if path != "" {
			return parseConfig(v)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return parseConfig(v)
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := parseConfig(v)
	if err != nil {
		return &Config{
			Analytics: AnalyticsConfig{WindowDays: 30, HorizonDays: 7, ZThreshold: 2.0},
			Logging:   LoggingConfig{Level: "warn"},
		}
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")

	v.SetDefault("analytics.window_days", 30)
	v.SetDefault("analytics.horizon_days", 7)
	v.SetDefault("analytics.z_threshold", 2.0)

	v.SetDefault("logging.level", "warn")
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Analytics.WindowDays <= 0 {
		cfg.Analytics.WindowDays = 30
	}
	if cfg.Analytics.HorizonDays <= 0 {
		cfg.Analytics.HorizonDays = 7
	}
	if cfg.Analytics.ZThreshold <= 0 {
		cfg.Analytics.ZThreshold = 2.0
	}
	return &cfg, nil
}
