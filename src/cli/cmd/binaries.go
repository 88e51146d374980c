package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules"
)

var (
	hostFlag         string
	binariesPlatform string
	binariesConfig   string
)

var binariesCmd = &cobra.Command{
	Use:   "binaries",
	Short: "Print the modules and binaries composing the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := rules.TargetInfo{
			Name: target.Name(),
			Type: target.Type(),
		}
		if binariesPlatform != "" {
			info.Platform = openPlatform("platform", binariesPlatform)
		}
		if binariesConfig != "" {
			c, err := platform.ParseConfiguration(binariesConfig)
			if err != nil {
				slog.Warn("configuration is not a registered configuration", "configuration", binariesConfig)
				c = platform.Configuration(strings.TrimSpace(binariesConfig))
			}
			info.Configuration = c
		}

		set := target.SetupBinaries(info)
		dump(cmd, info, set)

		w := cmd.OutOrStdout()
		for _, m := range set.ExtraModuleNames {
			fmt.Fprintf(w, "module  %s\n", m)
		}
		for _, b := range set.BinaryConfigs {
			fmt.Fprintf(w, "binary  %s (%s) %v\n", b.Name, b.Type, b.ModuleNames)
		}
		return nil
	},
}

func init() {
	binariesCmd.Flags().StringVar(&binariesPlatform, "platform", "", "platform being built")
	binariesCmd.Flags().StringVar(&binariesConfig, "configuration", "", "configuration being built")

	rootCmd.AddCommand(binariesCmd)
}
