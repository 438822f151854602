package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
)

const (
	invalidSelectionMessage = "Invalid selection. Try again."
	exitMessage             = "Exiting WordTools."
)

// Prompter supplies the user's choices to the menu loop. An empty path from
// ChooseFile or AskOutput means the user cancelled.
type Prompter interface {
	ChooseOperation(ctx context.Context) (Operation, error)
	ChooseFile(ctx context.Context, title string) (string, error)
	AskOutput(ctx context.Context, title string) (string, error)
}

// Request is one fully specified operation.
type Request struct {
	Operation  Operation
	InputPath  string
	OutputPath string
}

// Handler runs a request and returns the text to show the user, whether the
// operation succeeded or not.
type Handler func(ctx context.Context, req Request) string

// Loop repeatedly asks for an operation and runs it until the user exits.
type Loop struct {
	Prompter Prompter
	Handler  Handler
	Out      io.Writer
	// Banner is printed once before the first prompt.
	Banner string
}

// Run drives the loop. It returns nil when the user chooses Exit or input
// ends, and an error only if prompting itself fails.
func (l *Loop) Run(ctx context.Context) error {
	if l.Banner != "" {
		fmt.Fprint(l.Out, l.Banner)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		op, err := l.Prompter.ChooseOperation(ctx)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.Out, exitMessage)
			return nil
		case errors.Is(err, kerrors.ErrInvalidSelection):
			fmt.Fprintln(l.Out, invalidSelectionMessage)
			continue
		case err != nil:
			return err
		}

		if op == Exit {
			fmt.Fprintln(l.Out, exitMessage)
			return nil
		}

		req, ok, err := l.collect(ctx, op)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(l.Out, exitMessage)
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		fmt.Fprintln(l.Out, l.Handler(ctx, req))
	}
}

// collect asks for the paths op needs. ok is false if the user cancelled.
func (l *Loop) collect(ctx context.Context, op Operation) (req Request, ok bool, err error) {
	req.Operation = op

	title := "Select the file to process..."
	if op == Spellcheck {
		title = "Select the file to spellcheck..."
	}

	req.InputPath, err = l.Prompter.ChooseFile(ctx, title)
	if err != nil {
		return req, false, err
	}
	if req.InputPath == "" {
		fmt.Fprintln(l.Out, "No file selected.")
		return req, false, nil
	}

	if op == Spellcheck {
		return req, true, nil
	}

	req.OutputPath, err = l.Prompter.AskOutput(ctx, "Output file name")
	if err != nil {
		return req, false, err
	}
	if req.OutputPath == "" {
		fmt.Fprintln(l.Out, "No output file given.")
		return req, false, nil
	}

	return req, true, nil
}
