package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/sofmeright/buildmatrix/src/matrix"
	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules"
)

// Validate checks a loaded Config against the running tool version.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config, toolVersion string) (warnings []string, err error) {
	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, fmt.Errorf("version: must be 1, got %d", cfg.Version))
	}

	if cfg.Requires != "" {
		w, rerr := checkRequires(cfg.Requires, toolVersion)
		if w != "" {
			warnings = append(warnings, w)
		}
		if rerr != nil {
			errs = append(errs, rerr)
		}
	}

	if cfg.Target == "" {
		errs = append(errs, errors.New("target: is required"))
	} else if _, terr := rules.Get(cfg.Target); terr != nil {
		errs = append(errs, fmt.Errorf("target: %w", terr))
	}

	if len(cfg.Hosts) == 0 {
		warnings = append(warnings, "hosts: empty, sweeps will resolve nothing")
	}
	seen := make(map[platform.Platform]int, len(cfg.Hosts))
	for i, h := range cfg.HostPlatforms() {
		if h == "" {
			errs = append(errs, fmt.Errorf("hosts[%d]: empty host", i))
			continue
		}
		if first, dup := seen[h]; dup {
			errs = append(errs, fmt.Errorf("hosts[%d]: duplicate host %q (first at hosts[%d])", i, h, first))
			continue
		}
		seen[h] = i
		if !h.IsKnown() {
			warnings = append(warnings, fmt.Sprintf("hosts[%d]: %q is not a registered platform", i, h))
		}
	}

	if cfg.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency: must be at least 1, got %d", cfg.Concurrency))
	}

	if _, ferr := matrix.ParseFormat(cfg.Output.Format); ferr != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", ferr))
	}
	if cfg.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir: is required"))
	}

	if _, ferr := cfg.BuildFilter(); ferr != nil {
		errs = append(errs, fmt.Errorf("filter: %w", ferr))
	}

	return warnings, errors.Join(errs...)
}

// checkRequires evaluates the requires constraint. Development builds carry
// no comparable version, so they only get a warning.
func checkRequires(requires, toolVersion string) (string, error) {
	c, err := semver.NewConstraint(requires)
	if err != nil {
		return "", fmt.Errorf("requires: invalid constraint %q: %w", requires, err)
	}

	v, err := semver.NewVersion(toolVersion)
	if err != nil {
		return fmt.Sprintf("requires: tool version %q is not semver, skipping %q check", toolVersion, requires), nil
	}
	if !c.Check(v) {
		return "", fmt.Errorf("requires: tool version %s does not satisfy %q", v, requires)
	}
	return "", nil
}
