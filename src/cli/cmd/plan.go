package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/matrix"
	"github.com/sofmeright/buildmatrix/src/output"
	"github.com/sofmeright/buildmatrix/src/version"
)

var formatFlag string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Resolve every job the target builds on one host",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat()
		if err != nil {
			return err
		}
		filter, err := cfg.BuildFilter()
		if err != nil {
			return err
		}

		plan := matrix.Resolve(target, parseHost(hostFlag), filter)
		dump(cmd, plan)

		w := cmd.OutOrStdout()
		if format == matrix.FormatText {
			output.PlanSection(w, plan, output.UseColor())
			return nil
		}
		return matrix.WriteManifest(w, newManifest([]*matrix.Plan{plan}), format)
	},
}

func init() {
	planCmd.Flags().StringVar(&hostFlag, "host", "", "host platform (default: this machine)")
	planCmd.Flags().StringVar(&formatFlag, "format", "", "output format: text, yaml, toml, json (default: from config)")

	rootCmd.AddCommand(planCmd)
}

// resolveFormat applies CLI flag > config.
func resolveFormat() (matrix.Format, error) {
	if formatFlag != "" {
		return matrix.ParseFormat(formatFlag)
	}
	return matrix.ParseFormat(cfg.Output.Format)
}

func newManifest(plans []*matrix.Plan) *matrix.Manifest {
	return &matrix.Manifest{
		Tool:      "buildmatrix",
		Version:   version.Version,
		Generated: time.Now().UTC(),
		Plans:     plans,
	}
}

// sweepHosts resolves every configured host.
func sweepHosts(ctx context.Context) ([]*matrix.Plan, error) {
	filter, err := cfg.BuildFilter()
	if err != nil {
		return nil, err
	}
	return matrix.Sweep(ctx, target, cfg.HostPlatforms(), filter, cfg.Concurrency)
}
