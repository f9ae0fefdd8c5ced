package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/numtower/internal/history"
	"github.com/msto63/numtower/internal/tui/repl"
	"github.com/msto63/numtower/pkg/formula"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell", "tui"},
	Short:   "Start the interactive shell",
	Long: `Starts the interactive numtower shell.

Variables persist for the session and ans holds the last result.
Inputs are recorded in the history database and can be recalled
with the arrow keys in later sessions.

Commands:
  :vars                    list variables
  :reset                   clear variables
  :mode exact|float|both   change the display mode
  :clear                   clear the transcript
  :help                    list commands and functions
  :quit                    leave the shell

Keys:
  Enter       evaluate
  Up/Down     recall previous inputs
  PgUp/PgDn   scroll
  Ctrl+L      clear
  Ctrl+C      quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// stderr output would corrupt the alternate screen
	logger := newLogger(nil)

	store, err := history.Open(appConfig, logger)
	if err != nil {
		logger.LogError(err)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history disabled: %v\n", err)
		store = history.NopStore{}
	}
	defer store.Close()

	session := formula.NewSession(formula.WithLogger(logger))
	model := repl.New(repl.ConfigFrom(appConfig), session, store, logger)

	_, err = tea.NewProgram(model).Run()
	return err
}
