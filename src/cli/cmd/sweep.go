package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/ctxlog"
	"github.com/sofmeright/buildmatrix/src/matrix"
	"github.com/sofmeright/buildmatrix/src/output"
	"github.com/sofmeright/buildmatrix/src/version"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Resolve the target on every configured host",
	Long: `Resolve the target on every host listed in the config, the way a build
farm sweep would. Hosts resolve concurrently, up to the configured limit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat()
		if err != nil {
			return err
		}

		ctx := ctxlog.WithLogger(cmd.Context(), slog.Default())
		start := time.Now()
		plans, err := sweepHosts(ctx)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		dump(cmd, plans)

		w := cmd.OutOrStdout()
		if format != matrix.FormatText {
			return matrix.WriteManifest(w, newManifest(plans), format)
		}

		color := output.UseColor()
		output.SectionStart(w, "bm_sweep", "Sweep")
		output.ContextBlock(w, []output.KV{
			{Key: "Target", Value: target.Name()},
			{Key: "Hosts", Value: strconv.Itoa(len(plans))},
			{Key: "Version", Value: version.Version},
			{Key: "Limit", Value: strconv.Itoa(cfg.Concurrency)},
		})
		for _, p := range plans {
			output.PlanSection(w, p, color)
		}
		output.SweepSummary(w, plans, elapsed, color)
		output.SectionEnd(w, "bm_sweep")
		return nil
	},
}

func init() {
	sweepCmd.Flags().StringVar(&formatFlag, "format", "", "output format: text, yaml, toml, json (default: from config)")

	rootCmd.AddCommand(sweepCmd)
}
