// Package config loads runtime settings and builds the process logger.
package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultLogLevel keeps a normal run quiet apart from the confirmation line.
const DefaultLogLevel = "warn"

type Config struct {
	LogLevel string `mapstructure:"log_level"`
}

// LoadConfig reads tvsheets.yaml from the working directory, if present,
// and TVSHEETS_* / LOG_LEVEL environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("tvsheets")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("TVSHEETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("log_level", "TVSHEETS_LOG_LEVEL", "LOG_LEVEL")

	v.SetDefault("log_level", DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// NewLogger returns a console logger writing to out at the configured level.
// An unknown level falls back to DefaultLogLevel and is reported as a warning.
func NewLogger(cfg *Config, out io.Writer) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
	}).With().Timestamp().Logger()

	level, _ := zerolog.ParseLevel(DefaultLogLevel)
	if cfg != nil && cfg.LogLevel != "" {
		if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = parsed
		} else {
			logger.Warn().Str("invalid_level", cfg.LogLevel).Msgf("Invalid log level, using default '%s'", DefaultLogLevel)
		}
	}

	return logger.Level(level)
}
