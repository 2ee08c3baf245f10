// Package config handles loading and validation of PipSeed configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pipseed/pipseed/internal/derrors"
)

//go:embed defaults.yml
var defaultsYAML []byte

// SupportedConfigNames contains supported local configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".pipseed.yml",
	".pipseed.yaml",
	".pipseed.toml",
	".pipseed.json",
}

const (
	// GlobalConfigName is the name of the global config file
	GlobalConfigName = "config.yml"
	// AppName is used for the global config directory and in templates
	AppName = "pipseed"
)

// GenerateConfig holds the defaults of the generate command.
type GenerateConfig struct {
	Count  int    `koanf:"count"`
	Format string `koanf:"format"`
	Table  string `koanf:"table"`
	Pretty bool   `koanf:"pretty"`
	Seed   uint64 `koanf:"seed"`
	Output string `koanf:"output"` // path template, empty means stdout
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

// Config represents a PipSeed configuration
type Config struct {
	Prompt   string         `koanf:"prompt"`
	Banner   string         `koanf:"banner"`
	Farewell string         `koanf:"farewell"`
	Generate GenerateConfig `koanf:"generate"`
	Log      LogConfig      `koanf:"log"`

	// Sources lists the files merged over the defaults, lowest priority first.
	Sources []string `koanf:"-"`
}

// Loader handles loading and merging configuration layers
type Loader struct {
	globalPath func() (string, error)
}

// New creates a new config loader
func New() *Loader {
	return &Loader{globalPath: GetGlobalConfigPath}
}

// Load merges the given files, in order, over the built-in defaults.
func (l *Loader) Load(paths ...string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("defaults.yml", "failed to load built-in defaults", err)
	}

	for _, path := range paths {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(strings.Join(paths, ","), "failed to unmarshal config", err)
	}
	cfg.Sources = append([]string(nil), paths...)
	return cfg, nil
}

// Resolve loads the configuration for a working directory.
// With an explicit path only that file is merged over the defaults; otherwise
// the global config (if any) and then the first local config in dir are.
func (l *Loader) Resolve(dir, explicit string) (*Config, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, derrors.NewConfigurationError(explicit, "config file not found", err)
		}
		return l.Load(explicit)
	}

	var paths []string
	if globalPath, err := l.globalPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			paths = append(paths, globalPath)
		}
	}
	if local, ok := FindLocalConfig(dir); ok {
		paths = append(paths, local)
	}
	return l.Load(paths...)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, derrors.NewConfigurationError(path,
			fmt.Sprintf("unsupported config format: %s", filepath.Ext(path)), nil)
	}
}

// FindLocalConfig returns the first supported config file present in dir
func FindLocalConfig(dir string) (string, bool) {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// GetGlobalConfigPath returns the path to the global config file
func GetGlobalConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, AppName, GlobalConfigName), nil
}
