package cmd

import (
	"fmt"
	"runtime"

	"github.com/msto63/numtower/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "numtower %s\n", version.String())
		for _, name := range []string{"tower", "formula", "history", "repl"} {
			fmt.Fprintf(out, "  %-10s %s\n", name+":", version.ComponentVersion(name))
		}
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
