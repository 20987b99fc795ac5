package query

import (
	"errors"
	"slices"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/stopwords"
	apperrors "github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/errors"
)

func newTestParser() *Parser {
	return NewParser(stopwords.New([]string{"and", "in", "on"}))
}

func TestParseClassification(t *testing.T) {
	p := newTestParser()
	q, err := p.Parse("curly cat -collar fluffy")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := []string{"cat", "curly", "fluffy"}; !slices.Equal(q.Plus, want) {
		t.Errorf("Plus = %v, want %v", q.Plus, want)
	}
	if want := []string{"collar"}; !slices.Equal(q.Minus, want) {
		t.Errorf("Minus = %v, want %v", q.Minus, want)
	}
}

func TestParseDropsStopWords(t *testing.T) {
	p := newTestParser()
	q, err := p.Parse("cat and -in dog")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := []string{"cat", "dog"}; !slices.Equal(q.Plus, want) {
		t.Errorf("Plus = %v, want %v", q.Plus, want)
	}
	// A minus-prefixed stop word is discarded, not recorded as a restriction.
	if len(q.Minus) != 0 {
		t.Errorf("Minus = %v, want empty", q.Minus)
	}
}

func TestParseDeduplicatesAndSorts(t *testing.T) {
	p := newTestParser()
	q, err := p.Parse("dog cat dog -tail -tail cat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := []string{"cat", "dog"}; !slices.Equal(q.Plus, want) {
		t.Errorf("Plus = %v, want %v", q.Plus, want)
	}
	if want := []string{"tail"}; !slices.Equal(q.Minus, want) {
		t.Errorf("Minus = %v, want %v", q.Minus, want)
	}
}

func TestParseRawKeepsDuplicates(t *testing.T) {
	p := newTestParser()
	q, err := p.ParseRaw("dog cat dog")
	if err != nil {
		t.Fatalf("ParseRaw failed: %v", err)
	}
	if want := []string{"dog", "cat", "dog"}; !slices.Equal(q.Plus, want) {
		t.Errorf("Plus = %v, want %v", q.Plus, want)
	}
}

func TestParseEmptyText(t *testing.T) {
	p := newTestParser()
	q, err := p.Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(q.Plus) != 0 || len(q.Minus) != 0 {
		t.Errorf("expected empty query, got %+v", q)
	}
}

func TestParseErrors(t *testing.T) {
	p := newTestParser()
	cases := []struct {
		name string
		text string
		want error
	}{
		{"lone minus", "cat -", apperrors.ErrEmptyQueryWord},
		{"double minus", "--cat", apperrors.ErrDoubleMinus},
		{"control character", "ca\x01t", apperrors.ErrInvalidCharacter},
		{"control character in minus word", "-ca\x02t", apperrors.ErrInvalidCharacter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := p.Parse(tc.text); !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.text, err, tc.want)
			}
			if _, err := p.ParseRaw(tc.text); !errors.Is(err, tc.want) {
				t.Errorf("ParseRaw(%q) error = %v, want %v", tc.text, err, tc.want)
			}
		})
	}
}
