package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/wordtools/internal/configs"
	"github.com/google/uuid"
)

// Entry represents a single recorded operation.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // spellcheck, encrypt or decrypt.
	Input     string `json:"input"`

	// Optional fields depending on operation.
	Output       string `json:"output,omitempty"`        // For encrypt/decrypt.
	Bytes        int64  `json:"bytes,omitempty"`         // For encrypt/decrypt.
	Dictionary   string `json:"dictionary,omitempty"`    // For spellcheck.
	UnknownCount int    `json:"unknown_count,omitempty"` // For spellcheck.
	Error        string `json:"error,omitempty"`         // Set when the operation failed.
}

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// NewEntry starts an entry for op with a fresh ID.
func NewEntry(op, input string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Operation: op,
		Input:     input,
	}
}

// Log appends an entry to the history log.
// Failing to record history never fails the operation, so errors are dropped.
// Nothing is written when the data directory is unknown.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampLayout)
	}

	logPath := configs.HistoryPath()
	if logPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// Time parses the entry timestamp. The zero time is returned for malformed values.
func (e Entry) Time() time.Time {
	t, err := time.Parse(timestampLayout, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ReadEntries reads all entries from the history log.
// Returns an empty slice if the log doesn't exist or the data directory is unknown.
func ReadEntries() ([]Entry, error) {
	logPath := configs.HistoryPath()
	if logPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}
