// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content according to its role (paths, highlighted
// values, success and error markers). When colors are available, content is
// colorized with fatih/color. When NO_COLOR is set or the terminal doesn't
// support colors, text decorations are used instead:
//
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration
//
// Banner renders the menu title with go-figure.
package ui
