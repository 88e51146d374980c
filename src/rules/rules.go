// Package rules defines the target-rules contract consumed by the build
// orchestrator: which binaries compose a target, which platform and
// configuration pairs it builds monolithically on a given host, and which
// pairs a formal release must produce.
//
// Implementations are pure. Every call builds fresh values from its inputs,
// reads no process-wide state and may run concurrently without locking.
//
// Target packages self-register by name from init(); the CLI and config
// validation look targets up through Get, so adding a target is a blank
// import away.
package rules

import "github.com/sofmeright/buildmatrix/src/platform"

// TargetType classifies what a target produces.
type TargetType string

const (
	TypeGame    TargetType = "Game"
	TypeClient  TargetType = "Client"
	TypeServer  TargetType = "Server"
	TypeEditor  TargetType = "Editor"
	TypeProgram TargetType = "Program"
)

// TargetInfo is the identity the orchestrator passes to binary declaration.
type TargetInfo struct {
	Name          string                 `yaml:"name" toml:"name" json:"name"`
	Platform      platform.Platform      `yaml:"platform,omitempty" toml:"platform,omitempty" json:"platform,omitempty"`
	Configuration platform.Configuration `yaml:"configuration,omitempty" toml:"configuration,omitempty" json:"configuration,omitempty"`
	Type          TargetType             `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
}

// BinaryConfig describes an additional binary beyond the target's implicit default.
type BinaryConfig struct {
	Name        string     `yaml:"name" toml:"name" json:"name"`
	Type        TargetType `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	ModuleNames []string   `yaml:"modules,omitempty" toml:"modules,omitempty" json:"modules,omitempty"`
}

// BinarySet is what a target contributes to the orchestrator's accumulating
// module and binary lists. The caller owns it and merges it as it sees fit.
type BinarySet struct {
	ExtraModuleNames []string       `yaml:"extra_modules" toml:"extra_modules" json:"extra_modules"`
	BinaryConfigs    []BinaryConfig `yaml:"binaries" toml:"binaries" json:"binaries"`
}

// FormalBuild is one job required by an official release sweep.
type FormalBuild struct {
	Platform      platform.Platform      `yaml:"platform" toml:"platform" json:"platform"`
	Configuration platform.Configuration `yaml:"configuration" toml:"configuration" json:"configuration"`
	IsClient      bool                   `yaml:"client" toml:"client" json:"client"`
	IsServer      bool                   `yaml:"server" toml:"server" json:"server"`
}

// Target is the interface every target's rules implement.
type Target interface {
	Name() string
	Type() TargetType

	// SetupBinaries declares the binaries composing the target.
	SetupBinaries(info TargetInfo) BinarySet

	// MonolithicPlatforms returns the platforms host builds monolithically,
	// in scheduling order. The result is empty, never nil, for hosts the
	// target has no policy for.
	MonolithicPlatforms(host platform.Platform) []platform.Platform

	// MonolithicConfigs returns the configurations to build for the given
	// host and platform. Both parameters are part of the contract even when
	// a target's policy ignores them.
	MonolithicConfigs(host, target platform.Platform) []platform.Configuration

	// FormalBuilds returns the jobs host owns in a formal release.
	FormalBuilds(host platform.Platform) []FormalBuild
}

// FallbackReporter is implemented by targets whose formal policy folds
// unlisted hosts into a default case. The orchestrator uses it to surface
// hosts that were never explicitly assigned release duties.
type FallbackReporter interface {
	FormalFallback(host platform.Platform) bool
}
