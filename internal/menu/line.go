package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LinePrompter asks for choices with plain line-based prompts. It works on
// any reader, so it serves piped input and tests as well as terminals.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	// Dir is the directory candidate files are listed from.
	Dir string
	// Filter is a doublestar pattern selecting the candidate files.
	Filter string
}

// NewLinePrompter returns a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer, dir, filter string) *LinePrompter {
	return &LinePrompter{
		in:     bufio.NewReader(in),
		out:    out,
		Dir:    dir,
		Filter: filter,
	}
}

// ChooseOperation prints the numbered menu and reads a selection.
func (p *LinePrompter) ChooseOperation(ctx context.Context) (Operation, error) {
	fmt.Fprintln(p.out, "\nWordTools Menu:")
	for _, op := range Operations {
		fmt.Fprintf(p.out, "%d. %s\n", int(op), op)
	}
	fmt.Fprint(p.out, "Select: ")

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	return ParseOperation(line)
}

// ChooseFile lists candidate files and reads a number or a literal path.
// If the candidates cannot be listed only a path is accepted.
func (p *LinePrompter) ChooseFile(ctx context.Context, title string) (string, error) {
	fmt.Fprintln(p.out, title)

	candidates, err := Candidates(p.Dir, p.Filter)
	if err != nil {
		fmt.Fprintf(p.out, "Cannot list files: %v\n", err)
		candidates = nil
	}
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, c)
	}
	if len(candidates) > 0 {
		fmt.Fprint(p.out, "File (number or path, blank to cancel): ")
	} else {
		fmt.Fprint(p.out, "File path (blank to cancel): ")
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(candidates) {
		return filepath.Join(p.Dir, candidates[n-1]), nil
	}
	return line, nil
}

// AskOutput reads the output file name.
func (p *LinePrompter) AskOutput(ctx context.Context, title string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", title)
	return p.readLine()
}

// readLine returns the next line without surrounding whitespace. io.EOF is
// only returned when input ends before anything was typed.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Candidates lists the files under dir matching the doublestar pattern filter,
// relative to dir and sorted. An empty filter matches every file in dir.
func Candidates(dir, filter string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if filter == "" {
		filter = "*"
	}
	if !doublestar.ValidatePattern(filter) {
		return nil, fmt.Errorf("invalid file filter %q", filter)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), filter, doublestar.WithFilesOnly())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	sort.Strings(matches)
	return matches, nil
}
