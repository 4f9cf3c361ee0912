// Package config provides configuration loading for the buildkit CLI.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/buildkit"
)

// Environment variable names for configuration overrides.
const (
	EnvLogLevel   = "BUILDKIT_LOG_LEVEL"
	EnvLogFormat  = "BUILDKIT_LOG_FORMAT"
	EnvRecipes    = "BUILDKIT_RECIPES"
	EnvDisableLog = "BUILDKIT_DISABLE_LOG"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete CLI configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Recipes  RecipesConfig  `yaml:"recipes"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Disabled bool   `yaml:"disabled"`
}

// RecipesConfig locates the default recipe file.
type RecipesConfig struct {
	Path string `yaml:"path"`
}

// DefaultsConfig supplies values for flags the user leaves unset.
type DefaultsConfig struct {
	PizzaSize  string `yaml:"pizza_size"`
	PizzaCrust string `yaml:"pizza_crust"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: FormatText,
		},
		Recipes: RecipesConfig{
			Path: "recipes.yaml",
		},
		Defaults: DefaultsConfig{
			PizzaSize:  "Medium",
			PizzaCrust: "Classic",
		},
	}
}

// Load reads configuration from the nearest .buildkit.yaml and the
// environment. A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if configPath := findConfigFile(); configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	return finish(cfg)
}

// LoadFromFile reads configuration from path, then applies the environment.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	cfg.Recipes.Path = expandEnvVar(cfg.Recipes.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches for the configuration file.
func findConfigFile() string {
	candidates := []string{
		".buildkit.yaml",
		".buildkit.yml",
	}

	// Start from current directory and walk up
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvRecipes); v != "" {
		cfg.Recipes.Path = v
	}
	if v := os.Getenv(EnvDisableLog); v == "true" || v == "1" {
		cfg.Log.Disabled = true
	}
}

var envRef = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// expandEnvVar expands ${VAR} and $VAR references.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "${")
		name = strings.TrimPrefix(name, "$")
		name = strings.TrimSuffix(name, "}")
		return os.Getenv(name)
	})
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return buildkit.ValidateOneOf("log.format", strings.ToLower(c.Log.Format), FormatText, FormatJSON)
}

// SlogLevel returns the configured level as a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, buildkit.NewValidationErrorWithCause("log.level", "unknown level "+s, err)
	}
	return level, nil
}

// NewLogger builds the slog.Logger described by the configuration, writing
// to w. A disabled log discards everything.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	if c.Log.Disabled {
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.ToLower(c.Log.Format) == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
