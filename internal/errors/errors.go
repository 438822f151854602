package errors

import (
	"errors"
	"fmt"
)

// File errors indicate issues opening or creating the files an operation works on.
var (
	// ErrFileAccess indicates an input file could not be opened for reading
	// or an output file could not be opened for writing.
	ErrFileAccess = errors.New("file could not be accessed")

	// ErrInputAccess indicates the input file could not be opened. It wraps ErrFileAccess.
	ErrInputAccess = fmt.Errorf("%w: cannot open input file", ErrFileAccess)

	// ErrOutputAccess indicates the output file could not be created. It wraps ErrFileAccess.
	ErrOutputAccess = fmt.Errorf("%w: cannot create output file", ErrFileAccess)

	// ErrSameFile indicates the input and output paths refer to the same file.
	ErrSameFile = errors.New("input and output refer to the same file")
)

// Dictionary errors indicate issues with the spellcheck word list.
var (
	// ErrDictionaryLoad indicates the dictionary source could not be opened or read.
	ErrDictionaryLoad = errors.New("dictionary could not be loaded")

	// ErrNoDictionary indicates no dictionary path was supplied or configured.
	ErrNoDictionary = errors.New("no dictionary configured")
)

// Menu errors indicate issues with interactive input.
var (
	// ErrInvalidSelection indicates a menu choice outside the offered operations.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Configuration and history errors.
var (
	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrNoHistory indicates no operation history has been recorded yet.
	ErrNoHistory = errors.New("no operation history found")

	// ErrInvalidDateFormat indicates a history date filter is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
