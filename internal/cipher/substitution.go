package cipher

import (
	"bufio"
	"io"
)

// Direction selects which way a Map substitutes.
type Direction int

const (
	// Encrypt maps the standard alphabet onto the cipher alphabet.
	Encrypt Direction = iota
	// Decrypt maps the cipher alphabet back onto the standard alphabet.
	Decrypt
)

// String returns the lowercase operation name, as recorded in history.
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Noun returns the capitalised name of the operation, e.g. "Encryption".
func (d Direction) Noun() string {
	if d == Decrypt {
		return "Decryption"
	}
	return "Encryption"
}

// Map is a bijection over the uppercase letters A..Z.
type Map struct {
	table     [26]byte
	direction Direction
}

// BuildMap pairs letter A+i with alphabet[i]. For Encrypt the standard letter
// is the key; for Decrypt the cipher letter is.
func BuildMap(alphabet Alphabet, direction Direction) Map {
	m := Map{direction: direction}
	for i, c := range alphabet {
		plain := Standard[i]
		if direction == Decrypt {
			m.table[c-'A'] = plain
		} else {
			m.table[plain-'A'] = c
		}
	}
	return m
}

// Direction returns the direction the map was built for.
func (m Map) Direction() Direction {
	return m.direction
}

// Lookup returns the image of the uppercase letter c.
// It returns c unchanged if c is not an uppercase letter.
func (m Map) Lookup(c byte) byte {
	if c < 'A' || c > 'Z' {
		return c
	}
	return m.table[c-'A']
}

// Inverse returns the map for the opposite direction.
func (m Map) Inverse() Map {
	inv := Map{direction: Encrypt}
	if m.direction == Encrypt {
		inv.direction = Decrypt
	}
	for i, c := range m.table {
		inv.table[c-'A'] = byte('A' + i)
	}
	return inv
}

// Substitute maps a single byte, preserving the case of letters and passing
// any other byte through unchanged.
func (m Map) Substitute(c byte) byte {
	if !isLetter(c) {
		return c
	}
	out := m.table[toUpper(c)-'A']
	if isLower(c) {
		return toLower(out)
	}
	return out
}

type reader struct {
	src io.Reader
	m   Map
}

// NewReader returns a reader that yields the bytes of r substituted through m.
// The sequence is lazy and can only be restarted by reopening the source.
func NewReader(r io.Reader, m Map) io.Reader {
	return &reader{src: r, m: m}
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	for i := 0; i < n; i++ {
		p[i] = r.m.Substitute(p[i])
	}
	return n, err
}

// Transform copies r to w, substituting every letter through m. It returns the
// number of bytes written.
func Transform(r io.Reader, w io.Writer, m Map) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := io.Copy(bw, NewReader(bufio.NewReader(r), m))
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}
