// Package config loads runtime configuration for stride.
//
// Values are resolved in the usual precedence order: built-in defaults,
// then .stride.yaml, then STRIDE_* environment variables; CLI flags
// override all of these at the command layer.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a stride invocation.
type Config struct {
	// DatabasePath is the SQLite file holding habits and completions.
	DatabasePath string `mapstructure:"database_path"`

	// Format is the default output format, "text" or "json".
	Format string `mapstructure:"format"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file or environment.
func Load() (Config, error) {
	viper.SetDefault("database_path", "habits.db")
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)

	viper.SetConfigName(".stride")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetEnvPrefix("STRIDE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else (unreadable file,
		// bad YAML) should surface.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
