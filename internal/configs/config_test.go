package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
)

// withTempSettings points the user settings at a temporary directory for the test.
func withTempSettings(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	original := UserWordtoolsSettings
	UserWordtoolsSettings = &UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		UserDataPath:    filepath.Join(tempDir, "data"),
	}
	t.Cleanup(func() {
		UserWordtoolsSettings = original
	})
	return tempDir
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	withTempSettings(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config.Cipher.Keyword != DefaultKeyword {
		t.Errorf("Expected keyword %q, got %q", DefaultKeyword, config.Cipher.Keyword)
	}
	if config.Picker.Filter != DefaultPickerFilter {
		t.Errorf("Expected filter %q, got %q", DefaultPickerFilter, config.Picker.Filter)
	}
	if config.Spellcheck.Dictionary != "" {
		t.Errorf("Expected no dictionary, got %q", config.Spellcheck.Dictionary)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	withTempSettings(t)

	config := DefaultConfig()
	config.Cipher.Keyword = "ZEBRA"
	config.Spellcheck.Dictionary = "/tmp/words.txt"
	config.History.Disabled = true
	if err := SaveConfig(config); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", *config, *loaded)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	withTempSettings(t)

	if err := os.MkdirAll(UserWordtoolsSettings.UserConfigsPath, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "[spellcheck]\ndictionary = \"words.txt\"\n"
	if err := os.WriteFile(ConfigPath(), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config.Cipher.Keyword != DefaultKeyword {
		t.Errorf("Expected default keyword, got %q", config.Cipher.Keyword)
	}
	if config.Spellcheck.Dictionary != "words.txt" {
		t.Errorf("Expected dictionary words.txt, got %q", config.Spellcheck.Dictionary)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	withTempSettings(t)

	if err := os.MkdirAll(UserWordtoolsSettings.UserConfigsPath, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[cipher\nkeyword = "), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadConfig()
	if !errors.Is(err, kerrors.ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got: %v", err)
	}
}

func TestResolveKeywordAndDictionary(t *testing.T) {
	config := DefaultConfig()

	if got := config.ResolveKeyword(""); got != DefaultKeyword {
		t.Errorf("Expected default keyword, got %q", got)
	}
	if got := config.ResolveKeyword("owl"); got != "owl" {
		t.Errorf("Expected flag keyword to win, got %q", got)
	}

	config.Cipher.Keyword = ""
	if got := config.ResolveKeyword(""); got != DefaultKeyword {
		t.Errorf("Expected empty configured keyword to fall back, got %q", got)
	}

	if got := config.ResolveDictionary(""); got != "" {
		t.Errorf("Expected no dictionary, got %q", got)
	}
	config.Spellcheck.Dictionary = "/dict"
	if got := config.ResolveDictionary(""); got != "/dict" {
		t.Errorf("Expected configured dictionary, got %q", got)
	}
	if got := config.ResolveDictionary("/flag"); got != "/flag" {
		t.Errorf("Expected flag dictionary to win, got %q", got)
	}
}

func TestUnknownUserDirectories(t *testing.T) {
	original := UserWordtoolsSettings
	UserWordtoolsSettings = &UserSettings{}
	t.Cleanup(func() {
		UserWordtoolsSettings = original
	})

	if SettingsError() == nil {
		t.Error("Expected a settings error for empty user directories")
	}
	if ConfigPath() != "" || HistoryPath() != "" {
		t.Errorf("Expected empty paths, got %q and %q", ConfigPath(), HistoryPath())
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if config.Cipher.Keyword != DefaultKeyword {
		t.Errorf("Expected default keyword, got %q", config.Cipher.Keyword)
	}

	if err := SaveConfig(config); err == nil {
		t.Error("Expected SaveConfig to fail without a config directory")
	}
}

func TestLoadConfig_InvalidPickerFilter(t *testing.T) {
	withTempSettings(t)

	if err := os.MkdirAll(filepath.Dir(ConfigPath()), 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[picker]\nfilter = \"[\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadConfig()
	if !errors.Is(err, kerrors.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}
