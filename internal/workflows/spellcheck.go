package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/PolarWolf314/wordtools/internal/history"
	"github.com/PolarWolf314/wordtools/internal/spellcheck"
)

// SpellcheckOptions configures the spellcheck workflow.
type SpellcheckOptions struct {
	// InputPath is the text file to check.
	InputPath string

	// DictionaryPath is a whitespace-separated word list.
	DictionaryPath string

	// SkipHistory disables recording the operation in the history log.
	SkipHistory bool
}

// SpellcheckResult contains the outcome of a spellcheck.
type SpellcheckResult struct {
	// InputPath is the file that was checked.
	InputPath string

	// DictionaryPath is the word list that was used.
	DictionaryPath string

	// DictionaryWords is the number of distinct dictionary words.
	DictionaryWords int

	// Unknown lists every occurrence of a word missing from the dictionary.
	Unknown []spellcheck.UnknownWord
}

// Clean reports whether no unknown words were found.
func (r *SpellcheckResult) Clean() bool {
	return len(r.Unknown) == 0
}

// Spellcheck reports the words of the input file that are not in the dictionary.
//
// The dictionary is loaded before the input is opened; if it cannot be loaded
// no scan takes place.
//
// Returns ErrNoDictionary if no dictionary path is given.
// Returns ErrDictionaryLoad if the dictionary cannot be read.
// Returns ErrInputAccess (an ErrFileAccess) if the input cannot be opened and
// ErrFileAccess if reading it fails.
func Spellcheck(ctx context.Context, opts SpellcheckOptions) (result *SpellcheckResult, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := history.NewEntry("spellcheck", opts.InputPath)
	entry.Dictionary = opts.DictionaryPath
	defer func() {
		if opts.SkipHistory {
			return
		}
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.UnknownCount = len(result.Unknown)
		}
		history.Log(entry)
	}()

	if opts.DictionaryPath == "" {
		return nil, kerrors.ErrNoDictionary
	}

	dictionary, err := spellcheck.LoadDictionaryFile(opts.DictionaryPath)
	if err != nil {
		return nil, err
	}

	in, err := openInput(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	unknown, err := spellcheck.Check(dictionary, in)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrFileAccess, opts.InputPath, err)
	}

	return &SpellcheckResult{
		InputPath:       opts.InputPath,
		DictionaryPath:  opts.DictionaryPath,
		DictionaryWords: dictionary.Len(),
		Unknown:         unknown,
	}, nil
}
