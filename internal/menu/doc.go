// Package menu implements the interactive WordTools menu.
//
// Loop offers Spellcheck, Encrypt, Decrypt and Exit until the user exits.
// It collects file paths through a Prompter and hands a Request to a
// Handler, printing whatever the handler reports. Failed operations never
// end the loop.
//
// Two prompters are provided:
//
//   - LinePrompter: numbered line prompts on any io.Reader, listing
//     candidate files that match a doublestar filter such as "*.txt"
//   - FormPrompter: huh select, file picker and input forms for terminals
package menu
