package spellcheck

import (
	"bufio"
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
)

// Dictionary is a set of lowercase words.
type Dictionary map[string]struct{}

// LoadDictionary reads whitespace-separated words from r. Duplicates collapse.
func LoadDictionary(r io.Reader) (Dictionary, error) {
	d := make(Dictionary)
	err := scanTokens(r, func(_ int, tok []byte) {
		d[lowerASCII(tok)] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDictionaryFile loads a dictionary from the file at path.
func LoadDictionaryFile(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDictionaryLoad, err)
	}
	defer f.Close()

	d, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrDictionaryLoad, path, err)
	}
	return d, nil
}

// Contains reports whether word is in the dictionary. word must already be lowercase.
func (d Dictionary) Contains(word string) bool {
	_, ok := d[word]
	return ok
}

// Len returns the number of distinct words.
func (d Dictionary) Len() int {
	return len(d)
}

// scanTokens calls fn for every whitespace-delimited token in r along with the
// 1-based line it was found on. Lines have no length limit.
func scanTokens(r io.Reader, fn func(line int, tok []byte)) error {
	br := bufio.NewReader(r)
	line := 0
	for {
		text, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			// Long line: accumulate the rest before tokenising.
			buf := append([]byte(nil), text...)
			for err == bufio.ErrBufferFull {
				text, err = br.ReadSlice('\n')
				buf = append(buf, text...)
			}
			text = buf
		}
		if len(text) > 0 {
			line++
			forEachField(text, func(tok []byte) { fn(line, tok) })
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func forEachField(b []byte, fn func([]byte)) {
	start := -1
	for i, c := range b {
		if isSpace(c) {
			if start >= 0 {
				fn(b[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fn(b[start:])
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func lowerASCII(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
