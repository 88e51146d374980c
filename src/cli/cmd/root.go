package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/config"
	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules"
	_ "github.com/sofmeright/buildmatrix/src/rules/targets"
	"github.com/sofmeright/buildmatrix/src/version"
)

var (
	cfgFile    string
	verbose    bool
	debug      bool
	targetName string

	cfg    *config.Config
	target rules.Target
)

var rootCmd = &cobra.Command{
	Use:   "buildmatrix",
	Short: "Build-target configuration resolver",
	Long:  "buildmatrix resolves which platforms and configurations a target builds on each host.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose || debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" || cmd.Name() == "targets" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if targetName != "" {
			cfg.Target = targetName
		}

		warnings, err := config.Validate(cfg, version.Version)
		for _, w := range warnings {
			slog.Warn(w)
		}
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		target, err = rules.Get(cfg.Target)
		if err != nil {
			return err
		}
		slog.Debug("target loaded", "target", target.Name(), "type", target.Type())
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .buildmatrix.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "dump resolved values to stderr")
	rootCmd.PersistentFlags().StringVarP(&targetName, "target", "t", "", "target rules to resolve (default: from config)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// parseHost resolves a --host value. Empty means the running machine.
// Unregistered names are accepted; target rules treat them as unlisted hosts.
func parseHost(s string) platform.Platform {
	if s == "" {
		return platform.Host()
	}
	return openPlatform("host", s)
}

// openPlatform normalizes a registered platform name and passes any other
// value through with a warning.
func openPlatform(flag, s string) platform.Platform {
	p, err := platform.ParsePlatform(s)
	if err != nil {
		slog.Warn(flag+" is not a registered platform", flag, s)
		return platform.Platform(strings.TrimSpace(s))
	}
	return p
}

// dump writes v to stderr when --debug is set.
func dump(cmd *cobra.Command, v ...any) {
	if !debug {
		return
	}
	spew.Fdump(cmd.ErrOrStderr(), v...)
}
