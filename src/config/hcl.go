package config

import "github.com/hashicorp/hcl/v2/hclsimple"

// hclFile mirrors Config for HCL decoding. Pointers distinguish an absent
// attribute from a zero value so defaults survive.
type hclFile struct {
	Version     *int       `hcl:"version,optional"`
	Requires    *string    `hcl:"requires,optional"`
	Target      *string    `hcl:"target,optional"`
	Hosts       []string   `hcl:"hosts,optional"`
	Concurrency *int       `hcl:"concurrency,optional"`
	Filter      *hclFilter `hcl:"filter,block"`
	Output      *hclOutput `hcl:"output,block"`
}

type hclFilter struct {
	Platforms      []string `hcl:"platforms,optional"`
	Configurations []string `hcl:"configurations,optional"`
}

type hclOutput struct {
	Format *string `hcl:"format,optional"`
	Dir    *string `hcl:"dir,optional"`
}

func decodeHCL(filename string, src []byte, cfg *Config) error {
	var f hclFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return err
	}

	if f.Version != nil {
		cfg.Version = *f.Version
	}
	if f.Requires != nil {
		cfg.Requires = *f.Requires
	}
	if f.Target != nil {
		cfg.Target = *f.Target
	}
	if f.Hosts != nil {
		cfg.Hosts = f.Hosts
	}
	if f.Concurrency != nil {
		cfg.Concurrency = *f.Concurrency
	}
	if f.Filter != nil {
		cfg.Filter = FilterConfig{
			Platforms:      f.Filter.Platforms,
			Configurations: f.Filter.Configurations,
		}
	}
	if f.Output != nil {
		if f.Output.Format != nil {
			cfg.Output.Format = *f.Output.Format
		}
		if f.Output.Dir != nil {
			cfg.Output.Dir = *f.Output.Dir
		}
	}
	return nil
}
