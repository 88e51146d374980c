package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configsPlatform string

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "List configurations built monolithically for a host and platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		host := parseHost(hostFlag)
		p := host
		if configsPlatform != "" {
			p = openPlatform("platform", configsPlatform)
		}
		configs := target.MonolithicConfigs(host, p)
		dump(cmd, host, p, configs)

		for _, c := range configs {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	configsCmd.Flags().StringVar(&hostFlag, "host", "", "host platform (default: this machine)")
	configsCmd.Flags().StringVar(&configsPlatform, "platform", "", "target platform (default: the host)")

	rootCmd.AddCommand(configsCmd)
}
