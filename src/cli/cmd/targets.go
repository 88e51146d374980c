package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/rules"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List registered target rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range rules.All() {
			t, err := rules.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s%s\n", name, t.Type())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
