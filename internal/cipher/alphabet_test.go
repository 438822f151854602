package cipher

import "testing"

func TestGenerateAlphabet_Feather(t *testing.T) {
	got := GenerateAlphabet("FEATHER").String()
	want := "FEATHRZYXWVUSQPONMLKJIGDCB"
	if got != want {
		t.Errorf("GenerateAlphabet(%q) = %q, want %q", "FEATHER", got, want)
	}
}

func TestGenerateAlphabet_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
	}{
		{"empty keyword", "", "ZYXWVUTSRQPONMLKJIHGFEDCBA"},
		{"no letters", "123 !?-", "ZYXWVUTSRQPONMLKJIHGFEDCBA"},
		{"lowercase is uppercased", "feather", "FEATHRZYXWVUSQPONMLKJIGDCB"},
		{"mixed case duplicates collapse", "aAbB", "ABZYXWVUTSRQPONMLKJIHGFEDC"},
		{"punctuation ignored", "f-e.a t!", "FEATZYXWVUSRQPONMLKJIHGDCB"},
		{"all letters keeps keyword order", "QWERTYUIOPASDFGHJKLZXCVBNM", "QWERTYUIOPASDFGHJKLZXCVBNM"},
		{"non-ascii bytes ignored", "é-Z", "ZYXWVUTSRQPONMLKJIHGFEDCBA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateAlphabet(tt.keyword).String()
			if got != tt.want {
				t.Errorf("GenerateAlphabet(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestGenerateAlphabet_IsAlwaysPermutation(t *testing.T) {
	keywords := []string{
		"", "FEATHER", "zebra", "The quick brown fox jumps over the lazy dog",
		"\x00\xff\x80", "AAAAAAAA", "zyxwvutsrqponmlkjihgfedcba", "Hello, World! 123",
	}
	for b := 0; b < 256; b++ {
		keywords = append(keywords, string([]byte{byte(b), byte(255 - b)}))
	}

	for _, k := range keywords {
		a := GenerateAlphabet(k)
		if !a.IsPermutation() {
			t.Errorf("GenerateAlphabet(%q) = %q is not a permutation of A-Z", k, a.String())
		}
	}
}

func TestAlphabet_IsPermutationRejects(t *testing.T) {
	a := GenerateAlphabet("")
	a[0] = 'A'
	if a.IsPermutation() {
		t.Error("Expected alphabet with duplicate letter to be rejected")
	}

	b := GenerateAlphabet("")
	b[3] = 'a'
	if b.IsPermutation() {
		t.Error("Expected alphabet with lowercase letter to be rejected")
	}
}
