// Package workflows provides the file-level operations behind WordTools
// commands.
//
// Each workflow takes resolved paths and settings, opens and closes the
// files it needs, runs the cipher or spellcheck engine, and records the
// outcome in the history log. Workflows know nothing about flags, prompts,
// spinners or output formatting; cmd/ and the interactive menu are thin
// layers on top.
//
// # Available Workflows
//
//   - Encrypt / Decrypt: substitute a file through a keyword-derived alphabet
//   - Spellcheck: report words missing from a dictionary
//   - History: read and filter the operation history
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, wrapped
// with the offending path:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrFileAccess) {
//	    // Show user-friendly message
//	}
//
// A failed encryption or decryption never leaves a partial output file:
// the output is created only after the input is open, and removed if the
// copy fails.
package workflows
