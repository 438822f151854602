package workflows

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/wordtools/internal/cipher"
	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/PolarWolf314/wordtools/internal/history"
	"github.com/PolarWolf314/wordtools/internal/utils"
)

// CipherOptions configures the encrypt and decrypt workflows.
type CipherOptions struct {
	// InputPath is the file to read.
	InputPath string

	// OutputPath is the file to create or truncate.
	OutputPath string

	// Keyword seeds the cipher alphabet.
	Keyword string

	// SkipHistory disables recording the operation in the history log.
	SkipHistory bool
}

// CipherResult contains the outcome of an encrypt or decrypt operation.
type CipherResult struct {
	// Direction is the direction the file was transformed in.
	Direction cipher.Direction

	// InputPath is the file that was read.
	InputPath string

	// OutputPath is the file that was written.
	OutputPath string

	// Alphabet is the cipher alphabet derived from the keyword.
	Alphabet string

	// BytesWritten is the size of the output file.
	BytesWritten int64
}

// Message returns the completion message shown to the user.
func (r *CipherResult) Message() string {
	return fmt.Sprintf("%s complete: %s", r.Direction.Noun(), r.OutputPath)
}

// Encrypt substitutes every letter of the input file through the cipher
// alphabet derived from the keyword, writing the result to the output file.
//
// Returns ErrSameFile if input and output are the same file.
// Returns ErrInputAccess or ErrOutputAccess (both ErrFileAccess) if a file cannot be opened,
// and ErrFileAccess if reading or writing fails part way.
func Encrypt(ctx context.Context, opts CipherOptions) (*CipherResult, error) {
	return runCipher(ctx, opts, cipher.Encrypt)
}

// Decrypt reverses Encrypt for the same keyword.
//
// Returns ErrSameFile if input and output are the same file.
// Returns ErrInputAccess or ErrOutputAccess (both ErrFileAccess) if a file cannot be opened,
// and ErrFileAccess if reading or writing fails part way.
func Decrypt(ctx context.Context, opts CipherOptions) (*CipherResult, error) {
	return runCipher(ctx, opts, cipher.Decrypt)
}

func runCipher(ctx context.Context, opts CipherOptions, direction cipher.Direction) (result *CipherResult, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := history.NewEntry(direction.String(), opts.InputPath)
	entry.Output = opts.OutputPath
	defer func() {
		if opts.SkipHistory {
			return
		}
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Bytes = result.BytesWritten
		}
		history.Log(entry)
	}()

	in, err := openInput(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if utils.SameFile(opts.InputPath, opts.OutputPath) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrSameFile, opts.OutputPath)
	}

	alphabet := cipher.GenerateAlphabet(opts.Keyword)
	m := cipher.BuildMap(alphabet, direction)

	n, err := writeOutput(in, opts.OutputPath, m)
	if err != nil {
		return nil, err
	}

	return &CipherResult{
		Direction:    direction,
		InputPath:    opts.InputPath,
		OutputPath:   opts.OutputPath,
		Alphabet:     alphabet.String(),
		BytesWritten: n,
	}, nil
}

// writeOutput streams r through m into outputPath, creating or truncating it.
// The output is removed if the copy fails.
func writeOutput(r io.Reader, outputPath string, m cipher.Map) (int64, error) {
	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", kerrors.ErrOutputAccess, outputPath, err)
	}

	n, err := cipher.Transform(r, out, m)
	if err != nil {
		out.Close()
		os.Remove(outputPath)
		return 0, fmt.Errorf("%w: writing %s: %v", kerrors.ErrFileAccess, outputPath, err)
	}

	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return 0, fmt.Errorf("%w: closing %s: %v", kerrors.ErrFileAccess, outputPath, err)
	}

	return n, nil
}

// openInput opens a regular file for reading.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInputAccess, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInputAccess, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s: is a directory", kerrors.ErrInputAccess, path)
	}

	return f, nil
}
