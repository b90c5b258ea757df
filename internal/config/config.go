// Package config loads settings for the linreg command-line tool.
//
// Settings come from, in increasing priority: built-in defaults, an optional YAML
// config file, and LINREG_* environment variables (LINREG_OUTPUT_PRECISION,
// LINREG_FORECAST_PERIODS, LINREG_LOG_LEVEL, LINREG_LOG_FORMAT,
// LINREG_DATASET_COMPRESSION).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/arloliu/linreg/format"
	"github.com/arloliu/linreg/internal/logging"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "LINREG"

// MaxPrecision is the largest accepted number of output decimals.
const MaxPrecision = 15

// Config holds all CLI settings.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Log      LogConfig      `mapstructure:"log"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
}

// OutputConfig controls number formatting.
type OutputConfig struct {
	Precision int `mapstructure:"precision"`
}

// ForecastConfig controls default projections.
type ForecastConfig struct {
	Periods int `mapstructure:"periods"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatasetConfig controls binary dataset output.
type DatasetConfig struct {
	Compression string `mapstructure:"compression"`
	Encoding    string `mapstructure:"encoding"`
}

// Load reads configuration from configPath, or only defaults and environment
// variables when configPath is empty.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.precision", 6)
	v.SetDefault("forecast.periods", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("dataset.compression", "zstd")
	v.SetDefault("dataset.encoding", "raw")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:   OutputConfig{Precision: 6},
		Forecast: ForecastConfig{Periods: 5},
		Log:      LogConfig{Level: "info", Format: logging.FormatConsole},
		Dataset:  DatasetConfig{Compression: "zstd", Encoding: "raw"},
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		errs = append(errs, fmt.Errorf("output.precision must be between 0 and %d, got %d", MaxPrecision, c.Output.Precision))
	}

	if c.Forecast.Periods < 0 {
		errs = append(errs, fmt.Errorf("forecast.periods must not be negative, got %d", c.Forecast.Periods))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is not a valid level", c.Log.Level))
	}

	if c.Log.Format != logging.FormatConsole && c.Log.Format != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", logging.FormatConsole, logging.FormatJSON, c.Log.Format))
	}

	if _, ok := format.ParseCompression(c.Dataset.Compression); !ok {
		errs = append(errs, fmt.Errorf("dataset.compression %q is not supported", c.Dataset.Compression))
	}

	if _, ok := format.ParseEncoding(c.Dataset.Encoding); !ok {
		errs = append(errs, fmt.Errorf("dataset.encoding %q is not supported", c.Dataset.Encoding))
	}

	return errors.Join(errs...)
}

// CompressionType returns the parsed dataset compression.
// It assumes Validate has succeeded and falls back to CompressionNone otherwise.
func (c *Config) CompressionType() format.CompressionType {
	ct, ok := format.ParseCompression(c.Dataset.Compression)
	if !ok {
		return format.CompressionNone
	}

	return ct
}

// EncodingType returns the parsed dataset value encoding, or EncodingRaw when the
// setting is invalid.
func (c *Config) EncodingType() format.EncodingType {
	enc, ok := format.ParseEncoding(c.Dataset.Encoding)
	if !ok {
		return format.EncodingRaw
	}

	return enc
}
