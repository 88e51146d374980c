package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/rules"
)

var formalCmd = &cobra.Command{
	Use:   "formal",
	Short: "List the formal release builds a host owns",
	RunE: func(cmd *cobra.Command, args []string) error {
		host := parseHost(hostFlag)
		builds := target.FormalBuilds(host)
		dump(cmd, host, builds)

		if fr, ok := target.(rules.FallbackReporter); ok && fr.FormalFallback(host) {
			slog.Warn("formal builds come from the fallback policy", "target", target.Name(), "host", host)
		}

		w := cmd.OutOrStdout()
		for _, b := range builds {
			fmt.Fprintf(w, "%-10s%-13sclient=%t server=%t\n", b.Platform, b.Configuration, b.IsClient, b.IsServer)
		}
		return nil
	},
}

func init() {
	formalCmd.Flags().StringVar(&hostFlag, "host", "", "host platform (default: this machine)")

	rootCmd.AddCommand(formalCmd)
}
