// Package config loads themeforge settings from file, environment and
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. THEMEFORGE_OUTPUT_DIR.
const EnvPrefix = "THEMEFORGE"

// Config is the resolved configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Build   BuildConfig   `mapstructure:"build"`
	Themes  ThemesConfig  `mapstructure:"themes"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// OutputConfig controls where and how theme files are written.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Indent int    `mapstructure:"indent"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console, json
}

// BuildConfig controls theme generation.
type BuildConfig struct {
	Parallelism int `mapstructure:"parallelism"`
}

// ThemesConfig selects and locates theme seeds.
type ThemesConfig struct {
	Include  []string `mapstructure:"include"`
	SeedDirs []string `mapstructure:"seed_dirs"`
}

// DefaultConfigPath returns the user config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "themeforge", "config.yaml")
}

// configPathFunc is swapped in tests.
var configPathFunc = DefaultConfigPath

// Load reads configuration. An explicit path must exist; with no path the
// default location is read when present. Environment variables override the
// file, and defaults fill the rest.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		if candidate := configPathFunc(); candidate != "" {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("output.indent must be between 0 and 8, got %d", c.Output.Indent)
	}
	if c.Build.Parallelism < 1 {
		return fmt.Errorf("build.parallelism must be at least 1, got %d", c.Build.Parallelism)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	return nil
}

func (c *Config) normalize() {
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Themes.Include = compact(c.Themes.Include)
	c.Themes.SeedDirs = compact(c.Themes.SeedDirs)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.dir", filepath.Join("assets", "themes"))
	v.SetDefault("output.indent", 2)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Build defaults
	v.SetDefault("build.parallelism", 4)

	// Theme selection defaults
	v.SetDefault("themes.include", []string{})
	v.SetDefault("themes.seed_dirs", []string{})
}
