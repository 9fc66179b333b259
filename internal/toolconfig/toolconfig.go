// Package toolconfig provides configuration loading and validation for the lexfang CLI.
package toolconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Default configuration values.
const (
	defaultFormat   = "table"
	defaultLogLevel = "info"
)

// Output formats accepted by the CLI.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Config holds all configuration for the lexfang CLI.
type Config struct {
	Classes ClassesConfig `mapstructure:"classes"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClassesConfig holds character-class definition settings.
type ClassesConfig struct {
	// File is an optional YAML file of user-defined classes layered
	// on top of the builtin registry.
	File string `mapstructure:"file"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	// Set defaults.
	setDefaults(viperCfg)

	// Read config file.
	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("lexfang")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/lexfang")
	}

	// Read environment variables.
	viperCfg.SetEnvPrefix("LEXFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validate(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Classes defaults.
	viperCfg.SetDefault("classes.file", "")

	// Output defaults.
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.color", true)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", defaultLogLevel)
}

// validate validates the configuration.
func validate(config *Config) error {
	switch config.Output.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	return nil
}
