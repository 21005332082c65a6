// Package config loads BoxFit settings from defaults, an optional YAML file
// and BOXFIT_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/pkg/logger"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BOXFIT"

// Config holds all application configuration.
type Config struct {
	Log       logger.Config   `mapstructure:"log"`
	Pack      PackConfig      `mapstructure:"pack"`
	Inventory InventoryConfig `mapstructure:"inventory"`
}

// PackConfig holds packer defaults.
type PackConfig struct {
	// Scalar is the numeric type edges are parsed into.
	Scalar string `mapstructure:"scalar"`

	// Tolerance widens the exact-fit test. Zero means strict equality.
	Tolerance float64 `mapstructure:"tolerance"`

	// MaxIterations caps placement attempts. Zero means unlimited.
	MaxIterations int `mapstructure:"max_iterations"`

	// MinLeftover is the smallest edge a reported leftover may have.
	MinLeftover float64 `mapstructure:"min_leftover"`
}

// InventoryConfig locates the container preset file.
type InventoryConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultDir returns ~/.boxfit, or .boxfit when no home directory is known.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".boxfit")
}

// New returns a viper instance with defaults, search paths and environment
// binding applied. Callers may bind flags to it before calling Load.
func New(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("boxfit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath("/etc/boxfit")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and unmarshals the result. Finding no
// file on the search path is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := model.DefaultSettings()
	logDefaults := logger.DefaultConfig()

	v.SetDefault("log.level", logDefaults.Level)
	v.SetDefault("log.format", logDefaults.Format)
	v.SetDefault("log.development", false)

	v.SetDefault("pack.scalar", string(defaults.Scalar))
	v.SetDefault("pack.tolerance", defaults.Tolerance)
	v.SetDefault("pack.max_iterations", defaults.MaxIterations)
	v.SetDefault("pack.min_leftover", defaults.MinLeftover)

	v.SetDefault("inventory.path", filepath.Join(DefaultDir(), "inventory.json"))
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := model.ParseScalarKind(c.Pack.Scalar); err != nil {
		return fmt.Errorf("invalid pack.scalar: %w", err)
	}
	if c.Pack.Tolerance < 0 {
		return fmt.Errorf("invalid pack.tolerance %g: must not be negative", c.Pack.Tolerance)
	}
	if c.Pack.MaxIterations < 0 {
		return fmt.Errorf("invalid pack.max_iterations %d: must not be negative", c.Pack.MaxIterations)
	}
	return nil
}

// Settings converts the pack section into packer settings.
func (c *Config) Settings() model.Settings {
	return model.Settings{
		Scalar:        model.ScalarKind(c.Pack.Scalar),
		Tolerance:     c.Pack.Tolerance,
		MaxIterations: c.Pack.MaxIterations,
		MinLeftover:   c.Pack.MinLeftover,
	}
}
