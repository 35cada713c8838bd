// Package config binds the CLI's settings file (YAML/JSON/TOML, via
// viper) together with its flags into a single resolved Config.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully resolved set of tunables the driver and engine
// need, after flags have been layered over any config file.
type Config struct {
	Workers      int    `mapstructure:"workers"`
	MaxDecisions int    `mapstructure:"max-decisions"`
	LogLevel     string `mapstructure:"log-level"`
}

// Defaults runs single-threaded with no circuit sharing unless a
// caller opts into sharded workers, and caps the PODEM engine's
// decision budget generously.
func Defaults() Config {
	return Config{
		Workers:      1,
		MaxDecisions: 10000,
		LogLevel:     "info",
	}
}

// Load resolves a Config from an optional config file path and a flag
// set; explicit flags always take precedence over the file.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("workers", d.Workers)
	v.SetDefault("max-decisions", d.MaxDecisions)
	v.SetDefault("log-level", d.LogLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}
