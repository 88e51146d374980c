package matrix

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sofmeright/buildmatrix/src/platform"
)

// Patterns holds pre-compiled include and exclude regex patterns.
type Patterns struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match evaluates the compiled patterns against a value.
// Exclude-first semantics: if any exclude matches, rejected.
// Empty include list with no excludes = pass (no constraints).
// Empty include list with only excludes = everything not excluded passes.
func (p *Patterns) Match(value string) bool {
	if p == nil {
		return true
	}

	for _, re := range p.Exclude {
		if re.MatchString(value) {
			return false
		}
	}

	if len(p.Include) == 0 {
		return true
	}

	for _, re := range p.Include {
		if re.MatchString(value) {
			return true
		}
	}

	return false
}

// CompilePatterns compiles pattern tokens into include/exclude groups.
// A leading "!" negates a token. Bare names such as "Win64" are regexes too,
// so anchor them ("^Win64$") when a substring match is not wanted.
func CompilePatterns(patterns []string) (*Patterns, error) {
	p := &Patterns{}
	for _, token := range patterns {
		negate := false
		pat := strings.TrimSpace(token)
		if strings.HasPrefix(pat, "!") {
			negate = true
			pat = pat[1:]
		}
		if pat == "" {
			return nil, fmt.Errorf("empty pattern %q", token)
		}

		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pat, err)
		}

		if negate {
			p.Exclude = append(p.Exclude, re)
		} else {
			p.Include = append(p.Include, re)
		}
	}
	return p, nil
}

// Filter narrows a plan to selected platforms and configurations. It never
// changes what a target's rules return, only which of those jobs are kept.
type Filter struct {
	Platforms      *Patterns
	Configurations *Patterns
}

// NewFilter compiles platform and configuration pattern lists.
// Both empty yields a nil filter, which keeps every job.
func NewFilter(platforms, configurations []string) (*Filter, error) {
	if len(platforms) == 0 && len(configurations) == 0 {
		return nil, nil
	}
	pp, err := CompilePatterns(platforms)
	if err != nil {
		return nil, fmt.Errorf("platform filter: %w", err)
	}
	cp, err := CompilePatterns(configurations)
	if err != nil {
		return nil, fmt.Errorf("configuration filter: %w", err)
	}
	return &Filter{Platforms: pp, Configurations: cp}, nil
}

// Keep reports whether a job for the given platform and configuration survives.
func (f *Filter) Keep(p platform.Platform, c platform.Configuration) bool {
	if f == nil {
		return true
	}
	return f.Platforms.Match(string(p)) && f.Configurations.Match(string(c))
}
