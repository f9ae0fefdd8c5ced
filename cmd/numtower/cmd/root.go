package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/msto63/numtower/foundation/core/config"
	mdwlog "github.com/msto63/numtower/foundation/core/log"
	"github.com/msto63/numtower/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logFile string
	verbose bool

	// set by PersistentPreRunE
	appConfig *config.Config
	logOutput io.WriteCloser
)

var rootCmd = &cobra.Command{
	Use:   "numtower",
	Short: "numtower - exact numeric tower calculator",
	Long: `numtower evaluates formulas over an exact numeric tower:
integers, rationals and Gaussian rationals backed by arbitrary
precision integers. Transcendental functions are computed in
float64 and converted back exactly.

Commands:
  eval     - evaluate one or more formulas
  repl     - interactive shell
  history  - show or clear recorded evaluations
  config   - print the effective configuration
  version  - version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	err := execute()
	if err != nil {
		printError(err)
	}
	return err
}

// execute runs rootCmd and closes the log file whether or not RunE failed
func execute() error {
	defer closeLogOutput()
	return rootCmd.Execute()
}

func closeLogOutput() {
	if logOutput != nil {
		logOutput.Close()
		logOutput = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $NUMTOWER_CONFIG, ./numtower.toml, ~/.config/numtower/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append log output to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if logFile != "" {
		f, err := logging.OpenLogFile(logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOutput = f
	}
	return nil
}

// newLogger returns the command logger. Without a log file, output goes to
// w when it is non-nil and is discarded otherwise.
func newLogger(w io.Writer) *mdwlog.Logger {
	if logOutput != nil {
		w = logOutput
	}
	if w == nil {
		return mdwlog.Discard()
	}
	lc := logging.FromConfig(appConfig, verbose)
	lc.Output = w
	return logging.NewLogger(lc)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
