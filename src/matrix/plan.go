// Package matrix expands a target's rules into the concrete build jobs an
// orchestrator schedules for one or more hosts.
package matrix

import (
	"fmt"
	"strings"

	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules"
)

// JobKind separates everyday monolithic sweeps from formal release builds.
type JobKind string

const (
	KindMonolithic JobKind = "monolithic"
	KindFormal     JobKind = "formal"
)

// Job is a single build the orchestrator has to schedule.
type Job struct {
	Target        string                 `yaml:"target" toml:"target" json:"target"`
	Host          platform.Platform      `yaml:"host" toml:"host" json:"host"`
	Kind          JobKind                `yaml:"kind" toml:"kind" json:"kind"`
	Platform      platform.Platform      `yaml:"platform" toml:"platform" json:"platform"`
	Configuration platform.Configuration `yaml:"configuration" toml:"configuration" json:"configuration"`
	Client        bool                   `yaml:"client,omitempty" toml:"client,omitempty" json:"client,omitempty"`
	Server        bool                   `yaml:"server,omitempty" toml:"server,omitempty" json:"server,omitempty"`
}

// ID is stable across runs: target/host/kind/platform/configuration.
func (j Job) ID() string {
	return strings.Join([]string{
		j.Target, string(j.Host), string(j.Kind), string(j.Platform), string(j.Configuration),
	}, "/")
}

// Plan is the resolved job list for one target on one host.
type Plan struct {
	Target   string            `yaml:"target" toml:"target" json:"target"`
	Host     platform.Platform `yaml:"host" toml:"host" json:"host"`
	Binaries rules.BinarySet   `yaml:"binaries" toml:"binaries" json:"binaries"`
	Jobs     []Job             `yaml:"jobs" toml:"jobs" json:"jobs"`
	Skipped  int               `yaml:"skipped,omitempty" toml:"skipped,omitempty" json:"skipped,omitempty"`
	Warnings []string          `yaml:"warnings,omitempty" toml:"warnings,omitempty" json:"warnings,omitempty"`
}

// Monolithic returns the plan's monolithic jobs in policy order.
func (p *Plan) Monolithic() []Job { return p.jobsOf(KindMonolithic) }

// Formal returns the plan's formal release jobs.
func (p *Plan) Formal() []Job { return p.jobsOf(KindFormal) }

func (p *Plan) jobsOf(kind JobKind) []Job {
	out := []Job{}
	for _, j := range p.Jobs {
		if j.Kind == kind {
			out = append(out, j)
		}
	}
	return out
}

// Resolve asks t for everything it builds on host and flattens the answer
// into jobs. Monolithic jobs come first, platforms in the order the rules
// returned them, then formal jobs. A nil filter keeps every job.
func Resolve(t rules.Target, host platform.Platform, f *Filter) *Plan {
	plan := &Plan{
		Target: t.Name(),
		Host:   host,
		Binaries: t.SetupBinaries(rules.TargetInfo{
			Name:     t.Name(),
			Platform: host,
			Type:     t.Type(),
		}),
		Jobs: []Job{},
	}

	add := func(j Job) {
		if !f.Keep(j.Platform, j.Configuration) {
			plan.Skipped++
			return
		}
		plan.Jobs = append(plan.Jobs, j)
	}

	platforms := t.MonolithicPlatforms(host)
	if len(platforms) == 0 {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("%s has no monolithic platforms on host %s", t.Name(), host))
	}
	for _, p := range platforms {
		for _, c := range t.MonolithicConfigs(host, p) {
			add(Job{
				Target:        t.Name(),
				Host:          host,
				Kind:          KindMonolithic,
				Platform:      p,
				Configuration: c,
			})
		}
	}

	if fr, ok := t.(rules.FallbackReporter); ok && fr.FormalFallback(host) {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("%s formal builds for host %s come from the fallback policy", t.Name(), host))
	}
	for _, fb := range t.FormalBuilds(host) {
		add(Job{
			Target:        t.Name(),
			Host:          host,
			Kind:          KindFormal,
			Platform:      fb.Platform,
			Configuration: fb.Configuration,
			Client:        fb.IsClient,
			Server:        fb.IsServer,
		})
	}

	return plan
}
