package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/numtower/foundation/core/config"
	"github.com/msto63/numtower/internal/display"
	"github.com/msto63/numtower/internal/history"
	"github.com/msto63/numtower/pkg/formula"
	"github.com/spf13/cobra"
)

var (
	evalMode      string
	evalPrecision int
	evalNoHistory bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [formula...]",
	Short: "Evaluate formulas",
	Long: `Evaluates each argument as one line of a single session, so
later formulas can use variables assigned by earlier ones:

  numtower eval "x = 1/3" "x + 1/6" "sqrt(-4)"

Without arguments, formulas are read line by line from stdin.`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalMode, "mode", "m", "", "display mode: exact, float or both (default from config)")
	evalCmd.Flags().IntVarP(&evalPrecision, "precision", "p", -2, "float digits, -1 for shortest (default from config)")
	evalCmd.Flags().BoolVar(&evalNoHistory, "no-history", false, "do not record evaluations")
}

func runEval(cmd *cobra.Command, args []string) error {
	opts := display.FromConfig(appConfig)
	if evalMode != "" {
		switch mode := strings.ToLower(evalMode); mode {
		case config.ModeExact, config.ModeFloat, config.ModeBoth:
			opts.Mode = mode
		default:
			return fmt.Errorf("invalid mode %q, expected exact, float or both", evalMode)
		}
	}
	if evalPrecision >= -1 {
		opts.Precision = evalPrecision
	}

	var logOut io.Writer
	if verbose {
		logOut = cmd.ErrOrStderr()
	}
	logger := newLogger(logOut)

	var store history.Store = history.NopStore{}
	if !evalNoHistory {
		s, err := history.Open(appConfig, logger)
		if err != nil {
			logger.LogError(err)
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: history disabled: %v\n", err)
		} else {
			store = s
		}
	}
	defer store.Close()

	session := formula.NewSession(formula.WithLogger(logger))

	lines := args
	if len(lines) == 0 {
		var err error
		if lines, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	failed := 0
	for _, line := range lines {
		res, err := session.Eval(line)
		if rerr := store.Record(context.Background(), history.NewEntry(session.ID(), line, res.Value, err)); rerr != nil {
			logger.LogError(rerr)
		}
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", line, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), opts.Assignment(res.Name, res.Value))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d formulas failed", failed, len(lines))
	}
	return nil
}

// readLines returns the non-blank lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
