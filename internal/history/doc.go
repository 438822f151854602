// Package history records WordTools operations to a JSON Lines file.
//
// Every spellcheck, encryption and decryption appends one entry to
// <data dir>/wordtools/history.jsonl, whether it succeeded or not. Entries
// carry a UUID, a UTC timestamp, the operation name, the files involved and
// an outcome summary.
//
// Recording is best effort: Log never returns an error, and ReadEntries
// skips lines it cannot parse.
package history
