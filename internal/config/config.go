// Package config loads bomsort configuration.
//
// Configuration is optional YAML describing the feeder table, the optimizer
// pass budget, ingestion filters and logging. The file is located through
// the --config flag, then the BOMSORT_CONFIG environment variable, then
// ./bomsort.yaml; with none of those the built-in defaults apply.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/invectorlabs/bomsort/internal/bom"
	"github.com/invectorlabs/bomsort/internal/feeder"
	"github.com/invectorlabs/bomsort/internal/fsops"
)

const (
	// EnvConfig names the environment variable holding a config file path.
	EnvConfig = "BOMSORT_CONFIG"

	// LocalConfigFile is picked up from the working directory when present.
	LocalConfigFile = "bomsort.yaml"
)

// ErrInvalidConfig indicates a config file that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full bomsort configuration.
type Config struct {
	Table     TableConfig     `yaml:"table" json:"table"`
	Optimizer OptimizerConfig `yaml:"optimizer" json:"optimizer"`
	BOM       BOMConfig       `yaml:"bom" json:"bom"`
	Log       LogConfig       `yaml:"log" json:"log"`
}

// TableConfig describes the feeder table.
type TableConfig struct {
	// Slots is the number of feeder positions (default 38)
	Slots int `yaml:"slots" json:"slots"`

	// Pattern is the rank-to-slot order; derived center-out when empty
	Pattern []int `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// LowerHalfEnd is the last lower-half index of the swap rule; derived
	// as slots/2 - 2 when unset
	LowerHalfEnd *int `yaml:"lower_half_end,omitempty" json:"lower_half_end,omitempty"`

	// FeederWidths is the feeder width table. It is reported but not used
	// by slot allocation.
	FeederWidths []feeder.FeederWidth `yaml:"feeder_widths" json:"feeder_widths"`
}

// OptimizerConfig bounds the optimizer.
type OptimizerConfig struct {
	MaxPasses int `yaml:"max_passes" json:"max_passes"`
}

// BOMConfig controls ingestion.
type BOMConfig struct {
	// FilterPrefixes are designator prefixes dropped while reading
	FilterPrefixes []string `yaml:"filter_prefixes" json:"filter_prefixes"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Slots:        feeder.DefaultSlots,
			FeederWidths: feeder.DefaultFeederWidths(),
		},
		Optimizer: OptimizerConfig{MaxPasses: feeder.DefaultMaxPasses},
		BOM: BOMConfig{
			FilterPrefixes: append([]string(nil), bom.DefaultFilterPrefixes...),
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// Resolve picks the config file path: the explicit flag value, then
// BOMSORT_CONFIG, then ./bomsort.yaml if it exists. An empty result means
// defaults only.
func Resolve(fs fsops.FS, flagPath string, getenv func(string) string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if env := getenv(EnvConfig); env != "" {
		return env, nil
	}
	exists, err := fs.Exists(LocalConfigFile)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", LocalConfigFile, err)
	}
	if exists {
		return LocalConfigFile, nil
	}
	return "", nil
}

// Load reads the config at path over the defaults. An empty path returns
// the defaults.
func Load(fs fsops.FS, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FeederTable builds the feeder table, filling derived defaults.
func (c *Config) FeederTable() feeder.Table {
	table := feeder.Table{
		Slots:        c.Table.Slots,
		Pattern:      c.Table.Pattern,
		FeederWidths: c.Table.FeederWidths,
	}
	if len(table.Pattern) == 0 {
		table.Pattern = feeder.CenterOutPattern(c.Table.Slots)
	}
	if c.Table.LowerHalfEnd != nil {
		table.LowerHalfEnd = *c.Table.LowerHalfEnd
	} else {
		table.LowerHalfEnd = max(c.Table.Slots/2-2, 0)
	}
	return table
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.FeederTable().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Optimizer.MaxPasses <= 0 {
		return fmt.Errorf("%w: optimizer.max_passes must be positive, got %d", ErrInvalidConfig, c.Optimizer.MaxPasses)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Effective returns a copy with every derived value filled in.
func (c *Config) Effective() *Config {
	out := *c
	table := c.FeederTable()
	out.Table.Pattern = table.Pattern
	end := table.LowerHalfEnd
	out.Table.LowerHalfEnd = &end
	return &out
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
