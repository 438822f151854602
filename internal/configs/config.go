package configs

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultKeyword is the keyword the cipher alphabet is derived from when
// nothing else is configured.
const DefaultKeyword = "FEATHER"

// DefaultPickerFilter matches the files offered by the interactive file chooser.
const DefaultPickerFilter = "*.txt"

type Config struct {
	Cipher     CipherConfig     `toml:"cipher"`
	Spellcheck SpellcheckConfig `toml:"spellcheck"`
	Picker     PickerConfig     `toml:"picker"`
	History    HistoryConfig    `toml:"history"`
}

type CipherConfig struct {
	Keyword string `toml:"keyword"`
}

type SpellcheckConfig struct {
	Dictionary string `toml:"dictionary"`
}

type PickerConfig struct {
	Filter string `toml:"filter"`
}

type HistoryConfig struct {
	Disabled bool `toml:"disabled"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Cipher: CipherConfig{Keyword: DefaultKeyword},
		Picker: PickerConfig{Filter: DefaultPickerFilter},
	}
}

// LoadConfig loads the user configuration, falling back to defaults for a
// missing file, missing keys or an unknown config directory.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	configPath := ConfigPath()
	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, configPath, err)
	}

	if config.Cipher.Keyword == "" {
		config.Cipher.Keyword = DefaultKeyword
	}
	if config.Picker.Filter == "" {
		config.Picker.Filter = DefaultPickerFilter
	}
	if !doublestar.ValidatePattern(config.Picker.Filter) {
		return nil, fmt.Errorf("%w: %s: invalid picker filter %q", kerrors.ErrInvalidConfig, configPath, config.Picker.Filter)
	}

	return config, nil
}

// SaveConfig writes the user configuration file.
func SaveConfig(config *Config) error {
	configPath := ConfigPath()
	if configPath == "" {
		return fmt.Errorf("failed to save config: %w", SettingsError())
	}
	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ResolveKeyword returns flagValue if set, otherwise the configured keyword.
func (c *Config) ResolveKeyword(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.Cipher.Keyword != "" {
		return c.Cipher.Keyword
	}
	return DefaultKeyword
}

// ResolveDictionary returns flagValue if set, otherwise the configured
// dictionary path. An empty result means no dictionary is available.
func (c *Config) ResolveDictionary(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Spellcheck.Dictionary
}
