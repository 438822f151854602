package menu

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks for choices with full-screen huh forms. It needs a
// terminal on both stdin and stdout.
type FormPrompter struct {
	// Dir is the directory the file picker opens in.
	Dir string
	// Filter restricts the picker to one extension when it has the form "*.ext".
	Filter string
}

// ChooseOperation shows the menu as a select form. Aborting the form means Exit.
func (p *FormPrompter) ChooseOperation(ctx context.Context) (Operation, error) {
	options := make([]huh.Option[Operation], 0, len(Operations))
	for _, op := range Operations {
		options = append(options, huh.NewOption(op.String(), op))
	}

	op := Spellcheck
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Operation]().
			Title("WordTools Menu").
			Options(options...).
			Value(&op),
	)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return Exit, nil
	}
	if err != nil {
		return 0, err
	}
	return op, nil
}

// ChooseFile opens a file picker in Dir. Aborting returns an empty path.
func (p *FormPrompter) ChooseFile(ctx context.Context, title string) (string, error) {
	var path string
	picker := huh.NewFilePicker().
		Title(title).
		CurrentDirectory(p.dir()).
		Value(&path)
	if types := allowedTypes(p.Filter); types != nil {
		picker = picker.AllowedTypes(types)
	}

	err := huh.NewForm(huh.NewGroup(picker)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}
	return path, err
}

// AskOutput asks for the output file name. Aborting returns an empty name.
func (p *FormPrompter) AskOutput(ctx context.Context, title string) (string, error) {
	var path string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&path),
	)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}
	return strings.TrimSpace(path), err
}

func (p *FormPrompter) dir() string {
	if p.Dir == "" {
		return "."
	}
	return p.Dir
}

// allowedTypes turns a "*.ext" filter into the picker's extension list. Any
// other filter shows every file.
func allowedTypes(filter string) []string {
	if !strings.HasPrefix(filter, "*.") || strings.ContainsAny(filter[2:], "*?[{/") {
		return nil
	}
	return []string{filepath.Ext(filter)}
}
