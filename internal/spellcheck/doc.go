// Package spellcheck reports words in a text that are missing from a
// dictionary.
//
// Dictionaries and texts are both split on ASCII whitespace. Dictionary
// entries are lowercased; text tokens are reduced to their ASCII letters and
// lowercased before lookup, so "The," matches "the". Tokens with no letters
// at all are skipped.
package spellcheck
