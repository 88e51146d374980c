package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/config"
	"github.com/sofmeright/buildmatrix/src/version"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long: `Validate the config file and list any warnings.

Invalid configs already fail before any command runs; this command only
adds a readable summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		warnings, err := config.Validate(cfg, version.Version)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, warn := range warnings {
			fmt.Fprintf(w, "warning: %s\n", warn)
		}
		fmt.Fprintf(w, "config ok: target %s, %d hosts\n", cfg.Target, len(cfg.Hosts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
