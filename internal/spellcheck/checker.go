package spellcheck

import (
	"io"
	"strings"
)

// UnknownWord is a text token whose cleaned form is not in the dictionary.
type UnknownWord struct {
	// Word is the cleaned, lowercased form that was looked up.
	Word string
	// Token is the token as it appeared in the text.
	Token string
	// Line is the 1-based line the token was found on.
	Line int
}

// CleanToken keeps only the ASCII letters of tok, lowercased.
func CleanToken(tok string) string {
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// Check scans r and returns every occurrence of a word missing from d, in the
// order they appear.
func Check(d Dictionary, r io.Reader) ([]UnknownWord, error) {
	var unknown []UnknownWord
	err := scanTokens(r, func(line int, tok []byte) {
		word := CleanToken(string(tok))
		if word == "" || d.Contains(word) {
			return
		}
		unknown = append(unknown, UnknownWord{Word: word, Token: string(tok), Line: line})
	})
	if err != nil {
		return nil, err
	}
	return unknown, nil
}
