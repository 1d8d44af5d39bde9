package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given workspace root.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (UNUSEDPUB_*)
// 2. Config file (.unusedpub/config.yml or .unusedpub/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		configDir := filepath.Join(l.rootDir, ".unusedpub")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
	}

	// Enable environment variable overrides, e.g. UNUSEDPUB_INDEX_PATH
	v.SetEnvPrefix("UNUSEDPUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("index.path")
	v.BindEnv("index.generate")
	v.BindEnv("scan.cache_marker")
	v.BindEnv("scan.workers")
	v.BindEnv("project.marker")
	v.BindEnv("history.enabled")
	v.BindEnv("history.location")
	v.BindEnv("history.keep")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is acceptable - we'll use defaults +
		// env vars. An explicitly requested file must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || l.configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("index.path", defaults.Index.Path)
	v.SetDefault("index.generate", defaults.Index.Generate)
	v.SetDefault("index.command", defaults.Index.Command)

	v.SetDefault("scan.extensions", defaults.Scan.Extensions)
	v.SetDefault("scan.ignore", defaults.Scan.Ignore)
	v.SetDefault("scan.cache_marker", defaults.Scan.CacheMarker)
	v.SetDefault("scan.workers", defaults.Scan.Workers)

	v.SetDefault("project.marker", defaults.Project.Marker)

	v.SetDefault("history.enabled", defaults.History.Enabled)
	v.SetDefault("history.location", defaults.History.Location)
	v.SetDefault("history.keep", defaults.History.Keep)
}

// LoadFromDir loads configuration rooted at a specific workspace directory.
func LoadFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}

// LoadFromFile loads configuration from an explicit config file instead of the
// workspace's .unusedpub directory. The file must exist.
func LoadFromFile(rootDir, configFile string) (*Config, error) {
	l := &loader{rootDir: rootDir, configFile: configFile}
	return l.Load()
}

// IndexPath resolves the configured index path against the workspace root.
func (c *Config) IndexPath(workspace string) string {
	if filepath.IsAbs(c.Index.Path) {
		return c.Index.Path
	}
	return filepath.Join(workspace, c.Index.Path)
}

// HistoryPath resolves the configured history database path against the
// workspace root.
func (c *Config) HistoryPath(workspace string) string {
	if filepath.IsAbs(c.History.Location) {
		return c.History.Location
	}
	return filepath.Join(workspace, c.History.Location)
}
