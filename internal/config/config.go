// Package config handles loading and parsing of routeconf configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/NikitaCOEUR/routeconf/internal/derrors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yml
var defaultsYAML []byte

const (
	// DefaultConfigName is the name of the config file in the config directory
	DefaultConfigName = "config.yml"
	// EnvConfigPath overrides the config file location
	EnvConfigPath = "ROUTECONF_CONFIG"
)

// SupportedExtensions contains the config file extensions understood by the loader
var SupportedExtensions = []string{".yml", ".yaml", ".toml", ".json"}

// Config represents a routeconf configuration
type Config struct {
	LogLevel  string   `koanf:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Log level"`
	LogFile   string   `koanf:"log_file" json:"log_file,omitempty" jsonschema:"description=File the language server writes logs to (stderr when empty)"`
	LogFormat string   `koanf:"log_format" json:"log_format,omitempty" jsonschema:"enum=text,enum=json,description=Log output format"`
	Languages []string `koanf:"languages" json:"languages,omitempty" jsonschema:"uniqueItems=true,description=Language identifiers completions are offered for"`
	Disabled  []string `koanf:"disabled" json:"disabled,omitempty" jsonschema:"uniqueItems=true,description=Declaration identifiers whose completions are suppressed"`
	Format    string   `koanf:"format" json:"format,omitempty" jsonschema:"enum=text,enum=json,enum=yaml,description=Default output format of the complete command"`
}

// LanguageEnabled reports whether completions are offered for the language
func (c *Config) LanguageEnabled(languageID string) bool {
	return slices.Contains(c.Languages, languageID)
}

// DeclarationEnabled reports whether completions are offered for the declaration identifier
func (c *Config) DeclarationEnabled(identifier string) bool {
	return !slices.Contains(c.Disabled, identifier)
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded defaults are part of the binary
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Sample returns the commented default configuration file
func Sample() []byte {
	return slices.Clone(defaultsYAML)
}

// parserFor picks the koanf parser for a config file based on its extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// Load reads the embedded defaults and merges the file at path over them.
// An empty path loads the defaults only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	return cfg, nil
}

// loadFile merges a config file into k
func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return derrors.NewConfigurationError(path, "cannot load config", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return derrors.NewConfigurationError(path, "failed to read config", err)
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return derrors.NewConfigurationError(path, "failed to parse config", err)
	}

	return nil
}

// DefaultPath returns the path of the user config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		// Fallback to ~/.config
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "routeconf", DefaultConfigName), nil
}

// Find returns the config file to load.
// An explicit path is returned as-is; otherwise the default path is used
// when it exists. An empty result means defaults only.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}

	path, err := DefaultPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// WriteSample writes the sample configuration to path.
// An existing file is only replaced when force is set.
func WriteSample(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return derrors.NewConfigurationError(path, "config file already exists (use --force to overwrite)", nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, defaultsYAML, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
