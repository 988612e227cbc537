// Package config loads process settings from defaults, an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	configData Config
	v          = viper.New()
)

// Config holds all configuration settings.
type Config struct {
	// Logging configuration
	Log struct {
		Level  string
		Format string
	}
	// Stream configuration
	IO struct {
		BufferSize    int `mapstructure:"buffer_size"`
		MaxReadErrors int `mapstructure:"max_read_errors"`
	}
}

// Initialize sets up the configuration system. When cfgFile is empty the
// standard locations are searched and a missing file is not an error.
func Initialize(cfgFile string) error {
	setDefaults()

	// Environment variables
	v.SetEnvPrefix("CRYPTOPROC") // prefix for env vars
	v.SetEnvKeyReplacer(         // replace dots with underscores in env vars
		strings.NewReplacer(".", "_"),
	)
	v.AutomaticEnv() // read in environment variables that match

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("cryptoproc")        // name of config file (without extension)
		v.SetConfigType("yaml")              // config file type
		v.AddConfigPath(".")                 // optionally look for config in working directory
		v.AddConfigPath("$HOME/.cryptoproc") // look for config in .cryptoproc directory in home
		v.AddConfigPath("/etc/cryptoproc/")  // path to look for the config file in
	}

	// Read in config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if we can't find a config file, we'll use defaults
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal config into struct
	if err := v.Unmarshal(&configData); err != nil {
		return fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return nil
}

// setDefaults sets default values for all configuration options.
func setDefaults() {
	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Stream defaults
	v.SetDefault("io.buffer_size", 64*1024)
	v.SetDefault("io.max_read_errors", 0) // no limit
}

// Get returns the current configuration.
func Get() *Config {
	return &configData
}

// GetViper returns the viper instance.
func GetViper() *viper.Viper {
	return v
}
