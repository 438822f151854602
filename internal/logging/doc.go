// Package logger provides leveled logging for WordTools commands.
//
// Output is prefixed and colored with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug details and errors
//
// Without flags only WarnfAlways output is shown; user-facing results are
// printed by the commands themselves.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %s", path)
//
// The root command builds the logger in its PersistentPreRun.
package logger
