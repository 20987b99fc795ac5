package tokenizer

import (
	"slices"
	"testing"
)

func TestSplitWords(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single word", "cat", []string{"cat"}},
		{"simple", "white cat", []string{"white", "cat"}},
		{"consecutive spaces dropped", "white  cat", []string{"white", "cat"}},
		{"leading and trailing spaces", " white cat ", []string{"white", "cat"}},
		{"only spaces", "   ", nil},
		{"tabs are not delimiters", "white\tcat", []string{"white\tcat"}},
		{"case preserved", "White CAT", []string{"White", "CAT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(SplitWords(tc.text))
			if !slices.Equal(got, tc.want) {
				t.Errorf("SplitWords(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestSplitWordsRestartable(t *testing.T) {
	seq := SplitWords("one two three")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass %v differs from first %v", second, first)
	}
}

func TestSplitWordsEarlyStop(t *testing.T) {
	var got []string
	for word := range SplitWords("one two three") {
		got = append(got, word)
		if len(got) == 2 {
			break
		}
	}
	if want := []string{"one", "two"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValidWord(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"", true},
		{"cat\x01", false},
		{"\x1fcat", false},
		{"c\nat", false},
		{"punctuation-!?", true},
	}
	for _, tc := range cases {
		if got := ValidWord(tc.word); got != tc.want {
			t.Errorf("ValidWord(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}
