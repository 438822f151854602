package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type UserSettings struct {
	// UserConfigsPath is the directory holding config.toml.
	UserConfigsPath string
	// UserDataPath is the directory holding history.jsonl.
	UserDataPath string
}

var UserWordtoolsSettings *UserSettings

// settingsErr records why the user directories could not be located.
var settingsErr error

func init() {
	settings, err := defaultUserSettings()
	if err != nil {
		// Empty paths disable the config file and history; see SettingsError.
		settingsErr = err
		settings = &UserSettings{}
	}
	UserWordtoolsSettings = settings
}

// SettingsError returns the reason the user directories are unavailable, or
// nil when both the config and data directories are known.
func SettingsError() error {
	if UserWordtoolsSettings.UserConfigsPath != "" && UserWordtoolsSettings.UserDataPath != "" {
		return nil
	}
	if settingsErr != nil {
		return settingsErr
	}
	return errors.New("user config and data directories are not set")
}

func defaultUserSettings() (*UserSettings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error getting home directory: %w", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error getting config directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "wordtools"),
		UserDataPath:    filepath.Join(dataDir, "wordtools"),
	}, nil
}

// ConfigPath returns the path of the user config file, or "" when the config
// directory is unknown.
func ConfigPath() string {
	if UserWordtoolsSettings.UserConfigsPath == "" {
		return ""
	}
	return filepath.Join(UserWordtoolsSettings.UserConfigsPath, "config.toml")
}

// HistoryPath returns the path of the operation history log, or "" when the
// data directory is unknown.
func HistoryPath() string {
	if UserWordtoolsSettings.UserDataPath == "" {
		return ""
	}
	return filepath.Join(UserWordtoolsSettings.UserDataPath, "history.jsonl")
}
