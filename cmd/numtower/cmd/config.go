package cmd

import (
	"fmt"

	"github.com/msto63/numtower/foundation/core/config"
	"github.com/spf13/cobra"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after defaults and NUMTOWER_*
environment overrides were applied. The output can be saved as a
starting point for a config file.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "output format: toml or yaml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(configFormat)
	if err != nil {
		return err
	}

	source := appConfig.Source()
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	return appConfig.Encode(cmd.OutOrStdout(), format)
}
