package menu

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
)

// Operation is an entry of the main menu.
type Operation int

const (
	Spellcheck Operation = iota + 1
	Encrypt
	Decrypt
	Exit
)

// Operations lists the menu entries in display order.
var Operations = []Operation{Spellcheck, Encrypt, Decrypt, Exit}

func (o Operation) String() string {
	switch o {
	case Spellcheck:
		return "Spellcheck a file"
	case Encrypt:
		return "Encrypt a file"
	case Decrypt:
		return "Decrypt a file"
	case Exit:
		return "Exit"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// ParseOperation parses a menu number.
func ParseOperation(s string) (Operation, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(Spellcheck) || n > int(Exit) {
		return 0, fmt.Errorf("%w: %q", kerrors.ErrInvalidSelection, s)
	}
	return Operation(n), nil
}
