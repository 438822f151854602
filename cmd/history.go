package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/wordtools/internal/history"
	"github.com/PolarWolf314/wordtools/internal/ui"
	"github.com/PolarWolf314/wordtools/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyReverse   bool
	historyOperation string
	historySince     string
	historyFailed    bool
	historyJSON      bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "limit number of entries shown")
	historyCmd.Flags().BoolVar(&historyReverse, "reverse", false, "show most recent entries first")
	historyCmd.Flags().StringVar(&historyOperation, "operation", "", "filter by operation type (comma-separated)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "show entries on or after date (YYYY-MM-DD)")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "show only failed operations")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
}

// resetHistoryCommandState resets the history command's global state for testing.
func resetHistoryCommandState() {
	historyLimit = 0
	historyReverse = false
	historyOperation = ""
	historySince = ""
	historyFailed = false
	historyJSON = false
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past operations",
	Long: `Displays the log of past spellcheck, encrypt and decrypt operations.

Examples:
  wordtools history                            # View full history
  wordtools history -n 10                      # Last 10 entries
  wordtools history --reverse                  # Most recent first
  wordtools history --operation encrypt,decrypt
  wordtools history --since 2026-01-01
  wordtools history --failed --json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting history command")

	result, err := workflows.History(cmd.Context(), workflows.HistoryOptions{
		Limit:      historyLimit,
		Reverse:    historyReverse,
		Operations: historyOperation,
		Since:      historySince,
		FailedOnly: historyFailed,
	})
	if err != nil {
		fmt.Println(formatError(err))
		if isUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries, %d after filtering", result.TotalEntriesBeforeFilter, len(result.Entries))

	if historyJSON {
		return outputHistoryJSON(result.Entries)
	}

	if len(result.Entries) == 0 {
		fmt.Println("No history entries found matching the filters.")
		return nil
	}

	for _, e := range result.Entries {
		fmt.Println(formatHistoryEntry(e))
	}
	return nil
}

func outputHistoryJSON(entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatHistoryEntry(e history.Entry) string {
	when := e.Timestamp
	if t := e.Time(); !t.IsZero() {
		when = t.Local().Format("2006-01-02 15:04:05")
	}

	line := fmt.Sprintf("%s  %-10s  %s", ui.Muted.Sprint(when), e.Operation, ui.Path.Sprint(e.Input))
	if e.Output != "" {
		line += " → " + ui.Path.Sprint(e.Output)
	}

	switch {
	case e.Error != "":
		line += "  " + ui.Error.Sprint("✗ "+e.Error)
	case e.Operation == "spellcheck":
		line += "  " + ui.Success.Sprint("✓") + fmt.Sprintf(" %d unknown", e.UnknownCount)
	default:
		line += "  " + ui.Success.Sprint("✓") + fmt.Sprintf(" %d bytes", e.Bytes)
	}
	return line
}
