// Package errors provides typed error values for WordTools.
//
// Callers handle specific conditions with errors.Is() rather than string
// matching.
//
// # Error Categories
//
//   - File errors: the input or output file cannot be used (ErrFileAccess, ErrInputAccess, ErrOutputAccess, ErrSameFile)
//   - Dictionary errors: the spellcheck word list is missing (ErrDictionaryLoad, ErrNoDictionary)
//   - Menu errors: the user picked something that is not on the menu (ErrInvalidSelection)
//   - Config and history errors (ErrInvalidConfig, ErrNoHistory)
//
// # Usage
//
// Wrap errors with the path or operation involved:
//
//	return nil, fmt.Errorf("opening %s: %w", path, errors.ErrFileAccess)
//
// Handle them in the CLI layer:
//
//	result, err := workflows.Spellcheck(ctx, opts)
//	if errors.Is(err, kerrors.ErrDictionaryLoad) {
//	    // Show user-friendly message
//	}
package errors
