// Package config resolves the default settings of the steg command from a YAML file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load, e.g. STEG_KEY.
const EnvPrefix = "STEG"

// Built-in defaults.
const (
	DefaultLimit    = "16"
	DefaultChannels = "rgba"
	DefaultOutput   = "output.png"
	DefaultLogLevel = "info"
)

// Config holds the settings shared by the encode and decode commands.
type Config struct {
	Key      string `mapstructure:"key"`
	Limit    string `mapstructure:"limit"`
	Channels string `mapstructure:"channels"`
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration. path may be empty, in which case only the environment and the
// built-in defaults are consulted. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("key", "")
	v.SetDefault("limit", DefaultLimit)
	v.SetDefault("channels", DefaultChannels)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
