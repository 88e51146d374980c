package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List platforms the host builds monolithically",
	Long: `List the platforms a host builds monolithically, primary first.

Hosts the target has no policy for print nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host := parseHost(hostFlag)
		platforms := target.MonolithicPlatforms(host)
		dump(cmd, host, platforms)

		for _, p := range platforms {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	platformsCmd.Flags().StringVar(&hostFlag, "host", "", "host platform (default: this machine)")

	rootCmd.AddCommand(platformsCmd)
}
