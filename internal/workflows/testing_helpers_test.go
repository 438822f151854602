package workflows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/wordtools/internal/configs"
)

// setupTestEnvironment points the user settings at a temporary directory and
// returns a separate temporary working directory for test files.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	userDir := t.TempDir()
	original := configs.UserWordtoolsSettings
	configs.UserWordtoolsSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(userDir, "config"),
		UserDataPath:    filepath.Join(userDir, "data"),
	}
	t.Cleanup(func() {
		configs.UserWordtoolsSettings = original
	})
	return t.TempDir()
}

// writeTestFile is a helper to write test files.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
