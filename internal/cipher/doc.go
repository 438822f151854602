// Package cipher implements a keyword-derived monoalphabetic substitution
// cipher.
//
// A cipher alphabet is built from a keyword: the keyword's distinct letters
// in order of first appearance, followed by every unused letter from Z down
// to A. The alphabet is paired position by position with A..Z to form a
// substitution map, in the encrypt direction (A..Z to alphabet) or the
// decrypt direction (alphabet to A..Z).
//
// # Usage
//
//	alphabet := cipher.GenerateAlphabet("FEATHER")
//	m := cipher.BuildMap(alphabet, cipher.Encrypt)
//	n, err := cipher.Transform(src, dst, m)
//
// Only ASCII letters are substituted, and their case is preserved. Every
// other byte, including bytes of multi-byte UTF-8 sequences, is copied
// through unchanged.
//
// This is a classical cipher and offers no confidentiality against anyone
// who cares to break it.
package cipher
