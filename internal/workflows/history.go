package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/wordtools/internal/configs"
	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/PolarWolf314/wordtools/internal/history"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Since filters entries on or after this date (YYYY-MM-DD format).
	Since string

	// FailedOnly keeps only operations that ended in an error.
	FailedOnly bool
}

// HistoryResult contains the outcome of a history query.
type HistoryResult struct {
	// Entries are the filtered history entries.
	Entries []history.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// History reads and filters the operation history.
//
// Returns ErrNoHistory if no history has been recorded.
// Returns ErrInvalidDateFormat if Since is not YYYY-MM-DD.
func History(ctx context.Context, opts HistoryOptions) (*HistoryResult, error) {
	logPath := configs.HistoryPath()
	if logPath == "" {
		return nil, kerrors.ErrNoHistory
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		return nil, kerrors.ErrNoHistory
	}

	entries, err := history.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	result := &HistoryResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	filtered := entries

	if opts.Operations != "" {
		ops := strings.Split(opts.Operations, ",")
		for i := range ops {
			ops[i] = strings.TrimSpace(ops[i])
		}
		filtered = filterByOperations(filtered, ops)
	}

	if opts.Since != "" {
		sinceTime, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterSince(filtered, sinceTime)
	}

	if opts.FailedOnly {
		filtered = filterFailed(filtered)
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, limit takes first N (most recent).
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, limit takes last N (most recent).
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

// filterByOperations filters entries by operation types.
func filterByOperations(entries []history.Entry, ops []string) []history.Entry {
	opSet := make(map[string]bool)
	for _, op := range ops {
		opSet[strings.ToLower(op)] = true
	}

	var result []history.Entry
	for _, e := range entries {
		if opSet[strings.ToLower(e.Operation)] {
			result = append(result, e)
		}
	}
	return result
}

// filterSince keeps entries at or after since. Entries with unparseable timestamps are dropped.
func filterSince(entries []history.Entry, since time.Time) []history.Entry {
	var result []history.Entry
	for _, e := range entries {
		t := e.Time()
		if t.IsZero() {
			continue
		}
		if !t.Before(since) {
			result = append(result, e)
		}
	}
	return result
}

func filterFailed(entries []history.Entry) []history.Entry {
	var result []history.Entry
	for _, e := range entries {
		if e.Error != "" {
			result = append(result, e)
		}
	}
	return result
}
