package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/buildmatrix/src/matrix"
	"github.com/sofmeright/buildmatrix/src/platform"
)

// defaultConfigFiles are tried in order when no path is given.
var defaultConfigFiles = []string{
	".buildmatrix.yml",
	".buildmatrix.yaml",
	".buildmatrix.toml",
	".buildmatrix.hcl",
}

// Config is the top-level buildmatrix configuration.
type Config struct {
	// Version is the config schema version. Must be 1.
	Version int `yaml:"version" toml:"version"`

	// Requires is a semver constraint the running tool must satisfy, e.g. ">= 1.2".
	Requires string `yaml:"requires,omitempty" toml:"requires,omitempty"`

	// Target names the registered target rules to resolve.
	Target string `yaml:"target" toml:"target"`

	// Hosts lists the build hosts a sweep resolves, in scheduling order.
	Hosts []string `yaml:"hosts" toml:"hosts"`

	// Concurrency caps how many hosts a sweep resolves at once.
	Concurrency int `yaml:"concurrency" toml:"concurrency"`

	Filter FilterConfig `yaml:"filter" toml:"filter"`
	Output OutputConfig `yaml:"output" toml:"output"`
}

// FilterConfig narrows resolved plans. Entries are regexes; "!" negates.
type FilterConfig struct {
	Platforms      []string `yaml:"platforms,omitempty" toml:"platforms,omitempty"`
	Configurations []string `yaml:"configurations,omitempty" toml:"configurations,omitempty"`
}

// OutputConfig controls rendering and where manifests are written.
type OutputConfig struct {
	// Format is one of text, yaml, toml, json.
	Format string `yaml:"format" toml:"format"`

	// Dir receives manifests written by the manifest command.
	Dir string `yaml:"dir" toml:"dir"`
}

// DefaultFilterConfig keeps every job.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{}
}

// DefaultOutputConfig returns text output and the .buildmatrix manifest dir.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format: string(matrix.FormatText),
		Dir:    ".buildmatrix",
	}
}

func defaults() *Config {
	return &Config{
		Version:     1,
		Target:      "StrategyGame",
		Hosts:       []string{string(platform.Mac), string(platform.Win64), string(platform.Linux)},
		Concurrency: 4,
		Filter:      DefaultFilterConfig(),
		Output:      DefaultOutputConfig(),
	}
}

// Load reads configuration from a YAML, TOML or HCL file picked by extension.
// With an empty path the default files are tried in order, and defaults are
// returned when none exists. An explicit path must exist.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, name := range defaultConfigFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, err
	}

	cfg := defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".hcl":
		if err := decodeHCL(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config file %s: unsupported extension (use .yml, .yaml, .toml or .hcl)", path)
	}
	return cfg, nil
}

// HostPlatforms returns Hosts as platforms. Registered names are normalized
// to their canonical spelling; anything else is passed through unchanged.
func (c *Config) HostPlatforms() []platform.Platform {
	out := make([]platform.Platform, 0, len(c.Hosts))
	for _, h := range c.Hosts {
		if p, err := platform.ParsePlatform(h); err == nil {
			out = append(out, p)
			continue
		}
		out = append(out, platform.Platform(strings.TrimSpace(h)))
	}
	return out
}

// BuildFilter compiles the filter section.
func (c *Config) BuildFilter() (*matrix.Filter, error) {
	return matrix.NewFilter(c.Filter.Platforms, c.Filter.Configurations)
}
