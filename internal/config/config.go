package config

// Config represents the complete unusedpub configuration.
// It can be loaded from .unusedpub/config.yml with environment variable overrides.
type Config struct {
	Index   IndexConfig   `yaml:"index" mapstructure:"index"`
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Project ProjectConfig `yaml:"project" mapstructure:"project"`
	History HistoryConfig `yaml:"history" mapstructure:"history"`
}

// IndexConfig configures where the SCIP index lives and how to (re)generate it.
type IndexConfig struct {
	// Path to the SCIP index, relative to the workspace root unless absolute.
	Path string `yaml:"path" mapstructure:"path"`
	// Generate controls whether a missing index is produced by running Command.
	Generate bool `yaml:"generate" mapstructure:"generate"`
	// Command is the external indexer invocation. The placeholders {workspace}
	// and {index} are substituted before execution.
	Command []string `yaml:"command" mapstructure:"command"`
}

// ScanConfig defines which files the textual corroboration pass reads.
type ScanConfig struct {
	Extensions  []string `yaml:"extensions" mapstructure:"extensions"`     // file extensions without leading dot
	Ignore      []string `yaml:"ignore" mapstructure:"ignore"`             // glob patterns to skip
	CacheMarker string   `yaml:"cache_marker" mapstructure:"cache_marker"` // directories containing this file are pruned
	Workers     int      `yaml:"workers" mapstructure:"workers"`           // 0 means GOMAXPROCS
}

// ProjectConfig identifies what makes a directory a valid workspace root.
type ProjectConfig struct {
	Marker string `yaml:"marker" mapstructure:"marker"` // required file at the workspace root
}

// HistoryConfig controls run history recording.
type HistoryConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Location string `yaml:"location" mapstructure:"location"` // database path relative to the workspace root
	Keep     int    `yaml:"keep" mapstructure:"keep"`         // runs retained before pruning
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			Path:     "index.scip",
			Generate: true,
			Command:  []string{"rust-analyzer", "scip", "{workspace}", "--output", "{index}"},
		},
		Scan: ScanConfig{
			Extensions:  []string{"rs", "html"},
			Ignore:      []string{},
			CacheMarker: "CACHEDIR.TAG",
			Workers:     0,
		},
		Project: ProjectConfig{
			Marker: "Cargo.toml",
		},
		History: HistoryConfig{
			Enabled:  true,
			Location: ".unusedpub/history.db",
			Keep:     30,
		},
	}
}
