package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/PolarWolf314/wordtools/internal/ui"
	"github.com/PolarWolf314/wordtools/internal/workflows"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup function
// adds one before printing the message to stdout.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// formatError renders a workflow error for the user.
func formatError(err error) string {
	cross := ui.Error.Sprint("✗")
	arrow := ui.Info.Sprint("→")
	detail := "\n" + ui.Error.Sprint("Error: ") + err.Error()

	switch {
	case errors.Is(err, kerrors.ErrSameFile):
		return cross + " The output file would overwrite the input file\n" +
			arrow + " Choose a different output file name"
	case errors.Is(err, kerrors.ErrInputAccess):
		return cross + " Cannot open input file." + detail
	case errors.Is(err, kerrors.ErrOutputAccess):
		return cross + " Cannot create output file." + detail
	case errors.Is(err, kerrors.ErrFileAccess):
		return cross + " File error!" + detail
	case errors.Is(err, kerrors.ErrNoDictionary):
		return cross + " No dictionary configured\n" +
			arrow + " Pass " + ui.Code.Sprint("--dictionary <path>") + " or run " +
			ui.Code.Sprint("wordtools config init --dictionary <path>")
	case errors.Is(err, kerrors.ErrDictionaryLoad):
		return cross + " Cannot open dictionary." + detail
	case errors.Is(err, kerrors.ErrInvalidConfig):
		return cross + " Configuration file is invalid" + detail
	case errors.Is(err, kerrors.ErrNoHistory):
		return "No history entries found."
	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return cross + " " + err.Error()
	}
	return cross + " " + err.Error()
}

// isUnexpectedError reports whether err is outside the errors commands know
// how to explain, in which case it is returned to cobra.
func isUnexpectedError(err error) bool {
	for _, known := range []error{
		kerrors.ErrSameFile,
		kerrors.ErrFileAccess,
		kerrors.ErrNoDictionary,
		kerrors.ErrDictionaryLoad,
		kerrors.ErrInvalidConfig,
		kerrors.ErrNoHistory,
		kerrors.ErrInvalidDateFormat,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}

func formatCipherResult(r *workflows.CipherResult) string {
	return ui.Success.Sprint("✓") + " " + r.Direction.Noun() + " complete: " + ui.Path.Sprint(r.OutputPath)
}

func formatSpellcheckResult(r *workflows.SpellcheckResult) string {
	if r.Clean() {
		return ui.Success.Sprint("✓") + " No spelling errors found."
	}

	var b strings.Builder
	for _, w := range r.Unknown {
		b.WriteString(ui.Error.Sprint("✗"))
		b.WriteString(" Unknown word: ")
		b.WriteString(ui.Highlight.Sprint(w.Word))
		b.WriteString(" ")
		b.WriteString(ui.Muted.Sprintf("line %d", w.Line))
		b.WriteString("\n")
	}

	noun := "words"
	if len(r.Unknown) == 1 {
		noun = "word"
	}
	b.WriteString(fmt.Sprintf("Found %d unknown %s in %s", len(r.Unknown), noun, ui.Path.Sprint(r.InputPath)))
	return b.String()
}
