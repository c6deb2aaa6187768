// Package config provides configuration loading for avgate.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (AVGATE_*) > config file (~/.avgate.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all avgate configuration options.
type Config struct {
	// ClamscanPath is the scanner binary name or absolute path.
	ClamscanPath string `mapstructure:"clamscan_path" yaml:"clamscan_path"`
	// ClamscanArgs are fixed flags passed before the scanned path.
	ClamscanArgs []string `mapstructure:"clamscan_args" yaml:"clamscan_args"`
	// StderrIgnorePrefixes are tool stderr prefixes treated as benign noise.
	StderrIgnorePrefixes []string `mapstructure:"stderr_ignore_prefixes" yaml:"stderr_ignore_prefixes"`
	// ExcludeGlobs are file-name globs resolved clean without scanning.
	ExcludeGlobs []string      `mapstructure:"exclude_globs" yaml:"exclude_globs"`
	OutputFormat string        `mapstructure:"output_format" yaml:"output_format"`
	Concurrency  int           `mapstructure:"concurrency" yaml:"concurrency"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		ClamscanPath: "clamscan",
		OutputFormat: "table",
		Concurrency:  4,
		Timeout:      60 * time.Second,
	}
}

// Load reads configuration from ~/.avgate.yaml and environment variables.
// It does NOT apply CLI flag overrides — call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".avgate")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("AVGATE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("AVGATE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("clamscan") {
		val, _ := flags.GetString("clamscan")
		cfg.ClamscanPath = val
	}
	if flags.Changed("output") {
		val, _ := flags.GetString("output")
		cfg.OutputFormat = val
	}
	if flags.Changed("concurrency") {
		val, _ := flags.GetInt("concurrency")
		cfg.Concurrency = val
	}
	if flags.Changed("timeout") {
		val, _ := flags.GetDuration("timeout")
		cfg.Timeout = val
	}
	if flags.Changed("exclude") {
		val, _ := flags.GetStringSlice("exclude")
		cfg.ExcludeGlobs = val
	}
}

// ConfigFilePath returns the default config file path (~/.avgate.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".avgate.yaml"
	}
	return filepath.Join(home, ".avgate.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("clamscan_path", "clamscan")
	v.SetDefault("output_format", "table")
	v.SetDefault("concurrency", 4)
	v.SetDefault("timeout", 60*time.Second)
}
