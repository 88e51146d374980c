package matrix

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var formats = []Format{FormatText, FormatYAML, FormatTOML, FormatJSON}

// ParseFormat accepts text, yaml (or yml), toml and json.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (supported: text, yaml, toml, json)", s)
}

// Ext is the file extension used when a manifest is written to disk.
func (f Format) Ext() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// Manifest stamps a set of plans with the tool and source revision that
// produced them.
type Manifest struct {
	Tool      string    `yaml:"tool" toml:"tool" json:"tool"`
	Version   string    `yaml:"version" toml:"version" json:"version"`
	Commit    string    `yaml:"commit,omitempty" toml:"commit,omitempty" json:"commit,omitempty"`
	Branch    string    `yaml:"branch,omitempty" toml:"branch,omitempty" json:"branch,omitempty"`
	Tag       string    `yaml:"tag,omitempty" toml:"tag,omitempty" json:"tag,omitempty"`
	Dirty     bool      `yaml:"dirty,omitempty" toml:"dirty,omitempty" json:"dirty,omitempty"`
	Generated time.Time `yaml:"generated" toml:"generated" json:"generated"`
	Plans     []*Plan   `yaml:"plans" toml:"plans" json:"plans"`
}

// Jobs returns every job across all plans, in plan order.
func (m *Manifest) Jobs() []Job {
	var out []Job
	for _, p := range m.Plans {
		out = append(out, p.Jobs...)
	}
	return out
}

// WriteManifest encodes m to w in the given format.
func WriteManifest(w io.Writer, m *Manifest, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding yaml manifest: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(m); err != nil {
			return fmt.Errorf("encoding toml manifest: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding json manifest: %w", err)
		}
		return nil
	case FormatText:
		return writeText(w, m)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func writeText(w io.Writer, m *Manifest) error {
	fmt.Fprintf(w, "# %s %s", m.Tool, m.Version)
	if m.Commit != "" {
		rev := m.Commit
		if m.Tag != "" {
			rev = m.Tag + " " + rev
		}
		if m.Dirty {
			rev += ", dirty"
		}
		fmt.Fprintf(w, " (%s)", rev)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOST\tKIND\tPLATFORM\tCONFIGURATION\tROLE")
	for _, j := range m.Jobs() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", j.Host, j.Kind, j.Platform, j.Configuration, j.Role())
	}
	return tw.Flush()
}

// Role describes the client/server flags of a formal job, "-" when neither is set.
func (j Job) Role() string {
	switch {
	case j.Client && j.Server:
		return "client+server"
	case j.Client:
		return "client"
	case j.Server:
		return "server"
	default:
		return "-"
	}
}
