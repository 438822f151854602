package cipher

// Standard is the plain alphabet a cipher alphabet is paired against.
const Standard = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is a permutation of the 26 uppercase ASCII letters.
type Alphabet [26]byte

// GenerateAlphabet derives a cipher alphabet from keyword.
//
// The keyword's letters are uppercased and appended in order, skipping any
// already seen and any non-letter. The remaining letters follow in descending
// order. The result is always a permutation of A..Z: a keyword with no letters
// yields Z..A.
func GenerateAlphabet(keyword string) Alphabet {
	var a Alphabet
	var seen [26]bool
	n := 0

	for i := 0; i < len(keyword); i++ {
		c := keyword[i]
		if !isLetter(c) {
			continue
		}
		c = toUpper(c)
		if seen[c-'A'] {
			continue
		}
		seen[c-'A'] = true
		a[n] = c
		n++
	}

	for c := byte('Z'); c >= 'A'; c-- {
		if !seen[c-'A'] {
			a[n] = c
			n++
		}
	}

	return a
}

// String returns the alphabet as a 26-character string.
func (a Alphabet) String() string {
	return string(a[:])
}

// IsPermutation reports whether every letter A..Z appears exactly once.
func (a Alphabet) IsPermutation() bool {
	var seen [26]bool
	for _, c := range a {
		if c < 'A' || c > 'Z' || seen[c-'A'] {
			return false
		}
		seen[c-'A'] = true
	}
	return true
}

func isLetter(c byte) bool {
	c |= 0x20
	return c >= 'a' && c <= 'z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func toUpper(c byte) byte {
	if isLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
