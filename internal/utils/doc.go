// Package utils provides small shared helpers for WordTools.
//
// # Path Utilities
//
//   - SameFile: detects an output path that would overwrite the input
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether stdin is a terminal
//   - IsInteractive: checks whether both stdin and stdout are terminals
package utils
