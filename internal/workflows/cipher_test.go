package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/wordtools/internal/cipher"
	"github.com/PolarWolf314/wordtools/internal/configs"
	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/PolarWolf314/wordtools/internal/history"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	dir := setupTestEnvironment(t)
	plain := filepath.Join(dir, "plain.txt")
	encrypted := filepath.Join(dir, "encrypted.txt")
	decrypted := filepath.Join(dir, "decrypted.txt")
	writeTestFile(t, plain, "Hello, World! 123")

	encResult, err := Encrypt(context.Background(), CipherOptions{
		InputPath:  plain,
		OutputPath: encrypted,
		Keyword:    configs.DefaultKeyword,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if got := readTestFile(t, encrypted); got != "Yhuup, Gpmut! 123" {
		t.Errorf("Expected encrypted text %q, got %q", "Yhuup, Gpmut! 123", got)
	}
	if encResult.Direction != cipher.Encrypt || encResult.BytesWritten != 17 {
		t.Errorf("Unexpected result: %+v", encResult)
	}
	if encResult.Alphabet != "FEATHRZYXWVUSQPONMLKJIGDCB" {
		t.Errorf("Unexpected alphabet %q", encResult.Alphabet)
	}
	if encResult.Message() != "Encryption complete: "+encrypted {
		t.Errorf("Unexpected message %q", encResult.Message())
	}

	decResult, err := Decrypt(context.Background(), CipherOptions{
		InputPath:  encrypted,
		OutputPath: decrypted,
		Keyword:    configs.DefaultKeyword,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if got := readTestFile(t, decrypted); got != "Hello, World! 123" {
		t.Errorf("Expected round trip to restore plaintext, got %q", got)
	}
	if decResult.Message() != "Decryption complete: "+decrypted {
		t.Errorf("Unexpected message %q", decResult.Message())
	}
}

func TestEncrypt_EmptyInput(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "empty.txt")
	output := filepath.Join(dir, "out.txt")
	writeTestFile(t, input, "")

	result, err := Encrypt(context.Background(), CipherOptions{InputPath: input, OutputPath: output, Keyword: "FEATHER"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.BytesWritten != 0 {
		t.Errorf("Expected 0 bytes written, got %d", result.BytesWritten)
	}
	if got := readTestFile(t, output); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestEncrypt_TruncatesExistingOutput(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	writeTestFile(t, input, "abc")
	writeTestFile(t, output, strings.Repeat("stale content ", 100))

	if _, err := Encrypt(context.Background(), CipherOptions{InputPath: input, OutputPath: output, Keyword: "FEATHER"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := readTestFile(t, output); got != "fea" {
		t.Errorf("Expected %q, got %q", "fea", got)
	}
}

func TestEncrypt_MissingInputDoesNotCreateOutput(t *testing.T) {
	dir := setupTestEnvironment(t)
	output := filepath.Join(dir, "out.txt")

	_, err := Encrypt(context.Background(), CipherOptions{
		InputPath:  filepath.Join(dir, "missing.txt"),
		OutputPath: output,
		Keyword:    "FEATHER",
	})
	if !errors.Is(err, kerrors.ErrFileAccess) {
		t.Fatalf("Expected ErrFileAccess, got: %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("Expected output to be absent, stat returned: %v", statErr)
	}
}

func TestEncrypt_DirectoryInput(t *testing.T) {
	dir := setupTestEnvironment(t)
	output := filepath.Join(dir, "out.txt")

	_, err := Encrypt(context.Background(), CipherOptions{InputPath: dir, OutputPath: output, Keyword: "FEATHER"})
	if !errors.Is(err, kerrors.ErrFileAccess) {
		t.Fatalf("Expected ErrFileAccess, got: %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("Expected output to be absent, stat returned: %v", statErr)
	}
}

func TestEncrypt_UncreatableOutput(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	writeTestFile(t, input, "abc")

	_, err := Encrypt(context.Background(), CipherOptions{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "no", "such", "dir", "out.txt"),
		Keyword:    "FEATHER",
	})
	if !errors.Is(err, kerrors.ErrFileAccess) || !errors.Is(err, kerrors.ErrOutputAccess) {
		t.Fatalf("Expected ErrOutputAccess, got: %v", err)
	}
}

func TestEncrypt_SameFileIsRejected(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	writeTestFile(t, input, "keep me")

	_, err := Encrypt(context.Background(), CipherOptions{
		InputPath:  input,
		OutputPath: filepath.Join(dir, ".", "in.txt"),
		Keyword:    "FEATHER",
	})
	if !errors.Is(err, kerrors.ErrSameFile) {
		t.Fatalf("Expected ErrSameFile, got: %v", err)
	}
	if got := readTestFile(t, input); got != "keep me" {
		t.Errorf("Expected input to be untouched, got %q", got)
	}
}

func TestEncrypt_CancelledContext(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	writeTestFile(t, input, "abc")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Encrypt(ctx, CipherOptions{InputPath: input, OutputPath: output}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got: %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("Expected output to be absent, stat returned: %v", statErr)
	}
}

func TestEncrypt_RecordsHistory(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	writeTestFile(t, input, "abcdef")

	if _, err := Encrypt(context.Background(), CipherOptions{InputPath: input, OutputPath: output, Keyword: "FEATHER"}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	_, _ = Decrypt(context.Background(), CipherOptions{InputPath: filepath.Join(dir, "missing"), OutputPath: output})

	entries, err := history.ReadEntries()
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(entries))
	}
	if entries[0].Operation != "encrypt" || entries[0].Bytes != 6 || entries[0].Error != "" {
		t.Errorf("Unexpected encrypt entry: %+v", entries[0])
	}
	if entries[1].Operation != "decrypt" || entries[1].Error == "" {
		t.Errorf("Expected failed decrypt entry, got: %+v", entries[1])
	}
}

func TestEncrypt_SkipHistory(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	writeTestFile(t, input, "abc")

	_, err := Encrypt(context.Background(), CipherOptions{
		InputPath:   input,
		OutputPath:  filepath.Join(dir, "out.txt"),
		SkipHistory: true,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, statErr := os.Stat(configs.HistoryPath()); !os.IsNotExist(statErr) {
		t.Errorf("Expected no history file, stat returned: %v", statErr)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestWriteOutput_RemovesPartialOutput(t *testing.T) {
	dir := setupTestEnvironment(t)
	output := filepath.Join(dir, "out.txt")
	m := cipher.BuildMap(cipher.GenerateAlphabet(configs.DefaultKeyword), cipher.Encrypt)

	_, err := writeOutput(failingReader{}, output, m)
	if !errors.Is(err, kerrors.ErrFileAccess) {
		t.Fatalf("Expected ErrFileAccess, got: %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("Expected partial output to be removed, stat returned: %v", statErr)
	}
}

func TestEncrypt_MissingInputAsOutputIsFileAccess(t *testing.T) {
	dir := setupTestEnvironment(t)
	path := filepath.Join(dir, "missing.txt")

	_, err := Encrypt(context.Background(), CipherOptions{InputPath: path, OutputPath: path})
	if !errors.Is(err, kerrors.ErrInputAccess) {
		t.Errorf("Expected ErrInputAccess, got: %v", err)
	}
	if errors.Is(err, kerrors.ErrSameFile) {
		t.Errorf("Missing input should not be reported as the same file: %v", err)
	}
}

func TestEncrypt_UnknownDataDirectoryWritesNoHistory(t *testing.T) {
	dir := setupTestEnvironment(t)
	input := filepath.Join(dir, "in.txt")
	writeTestFile(t, input, "abc")
	configs.UserWordtoolsSettings = &configs.UserSettings{}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Failed to restore directory: %v", err)
		}
	})

	if _, err := Encrypt(context.Background(), CipherOptions{InputPath: input, OutputPath: filepath.Join(dir, "out.txt")}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "history.jsonl")); !os.IsNotExist(statErr) {
		t.Errorf("Expected no history in the working directory, stat returned: %v", statErr)
	}
}
