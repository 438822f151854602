package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/wordtools/internal/configs"
	logger "github.com/PolarWolf314/wordtools/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points user settings at a temporary directory, moves
// into a fresh working directory and returns its path.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalSettings := configs.UserWordtoolsSettings
	originalNoColor := color.NoColor

	tempDir := t.TempDir()
	tempUserDir := t.TempDir()

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	configs.UserWordtoolsSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		UserDataPath:    filepath.Join(tempUserDir, "data"),
	}
	color.NoColor = true
	ResetGlobalState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserWordtoolsSettings = originalSettings
		color.NoColor = originalNoColor
		ResetGlobalState()
	})

	return tempDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	for _, r := range []*os.File{stdoutReader, stderrReader} {
		go func(r *os.File) {
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, r); err != nil {
				log.Fatalf("Failed to run copy command: %s", err)
			}
			outputChan <- buf.String()
		}(r)
	}

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	out := <-outputChan
	out += <-outputChan

	return out, err
}

// createTestCLI builds a root command wired like main with args and optional stdin.
func createTestCLI(args []string, stdin string) *cobra.Command {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	rootCmd := &cobra.Command{
		Use: "wordtools",
		RunE: func(c *cobra.Command, args []string) error {
			return RunMenu(c)
		},
	}
	Register(rootCmd)

	rootCmd.SetArgs(args)
	if stdin != "" {
		rootCmd.SetIn(strings.NewReader(stdin))
	}
	return rootCmd
}

// runCLI executes args and returns everything written to stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	ResetGlobalState()
	output, err := captureOutput(func() error {
		return createTestCLI(args, stdin).Execute()
	})
	if err != nil {
		t.Fatalf("Command %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
