// Package configs manages WordTools user configuration.
//
// Configuration is a TOML file at <UserConfigDir>/wordtools/config.toml:
//
//	[cipher]
//	keyword = "FEATHER"
//
//	[spellcheck]
//	dictionary = "/usr/share/dict/words"
//
//	[picker]
//	filter = "*.txt"
//
//	[history]
//	disabled = false
//
// A missing file, or a missing key, falls back to DefaultConfig. Command-line
// flags take precedence over the file; see ResolveKeyword and
// ResolveDictionary.
//
// # Settings
//
// UserWordtoolsSettings holds the config and data directories. It is
// initialised at startup and may be replaced in tests.
package configs
