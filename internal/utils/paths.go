package utils

import (
	"os"
	"path/filepath"
)

// SameFile reports whether a and b refer to the same file. Paths that do not
// exist yet are compared after cleaning and resolving to absolute form.
func SameFile(a, b string) bool {
	ai, aerr := os.Stat(a)
	bi, berr := os.Stat(b)
	if aerr == nil && berr == nil {
		return os.SameFile(ai, bi)
	}

	absA, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return absA == absB
}
