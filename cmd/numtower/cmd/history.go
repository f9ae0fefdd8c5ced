package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/msto63/numtower/internal/history"
	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	historySession string
	historyFailed  bool
	historySince   time.Duration
	historyClear   bool
	historyPrune   time.Duration
	historyJSON    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded evaluations",
	Long: `Shows evaluations recorded by eval and repl, newest first.

  numtower history --limit 10
  numtower history --failed --since 24h
  numtower history --prune 720h
  numtower history --clear`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (default from config)")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only entries of this session")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "only failed evaluations")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only entries newer than this duration")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all entries")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete entries older than this duration")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print entries as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !appConfig.HistoryEnabled() {
		fmt.Fprintln(cmd.OutOrStdout(), "history is disabled")
		return nil
	}

	store, err := history.Open(appConfig, newLogger(nil))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	out := cmd.OutOrStdout()

	switch {
	case historyClear:
		deleted, err := store.Clear(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %d entries\n", deleted)
		return nil

	case historyPrune > 0:
		deleted, err := store.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %d entries older than %s\n", deleted, historyPrune)
		return nil
	}

	filter := history.Filter{SessionID: historySession, Limit: historyLimit}
	if filter.Limit <= 0 {
		filter.Limit = appConfig.History.Limit
	}
	if historyFailed {
		filter.Failed = &historyFailed
	}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}

	entries, err := store.Recent(ctx, filter)
	if err != nil {
		return err
	}

	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []*history.Entry{}
		}
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "no entries")
		return nil
	}
	for _, e := range entries {
		result := "= " + e.Result
		if e.Failed() {
			result = "! " + e.Error
		}
		fmt.Fprintf(out, "%s  %-8s  %-30s %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"), shortID(e.SessionID), e.Expression, result)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
