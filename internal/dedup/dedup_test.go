package dedup

import (
	"context"
	"slices"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/stopwords"
)

func TestRemoveKeepsLowestID(t *testing.T) {
	ix := index.New(stopwords.New([]string{"and", "with"}))
	docs := []struct {
		id   int
		text string
	}{
		{1, "funny pet and nasty rat"},
		{2, "funny pet with curly hair"},
		{3, "funny pet with curly hair"},
		{4, "funny pet and curly hair"},        // same term set as 2 ("and"/"with" are stop words)
		{5, "funny funny pet and nasty nasty rat"}, // same term set as 1
		{6, "funny pet and not very nasty rat"},
		{7, "very nasty rat and not very funny pet"}, // same term set as 6
		{8, "pet with rat and rat and rat"},
		{9, "nasty rat with curly hair"},
	}
	for _, d := range docs {
		if err := ix.Insert(d.id, d.text, index.StatusActive, nil); err != nil {
			t.Fatalf("Insert(%d) failed: %v", d.id, err)
		}
	}

	removed, err := Remove(context.Background(), ix)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if want := []int{3, 4, 5, 7}; !slices.Equal(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
	if got, want := ix.DocumentIDs(), []int{1, 2, 6, 8, 9}; !slices.Equal(got, want) {
		t.Errorf("DocumentIDs = %v, want %v", got, want)
	}
}

func TestRemoveNoDuplicates(t *testing.T) {
	ix := index.New(nil)
	if err := ix.Insert(1, "alpha", index.StatusActive, nil); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := ix.Insert(2, "beta", index.StatusActive, nil); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	removed, err := Remove(context.Background(), ix)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v, want none", removed)
	}
	if got := ix.DocumentCount(); got != 2 {
		t.Errorf("DocumentCount = %d, want 2", got)
	}
}

func TestRemoveEmptyTermSetsAreDuplicates(t *testing.T) {
	ix := index.New(stopwords.New([]string{"and", "or"}))
	if err := ix.Insert(1, "and or", index.StatusActive, nil); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := ix.Insert(2, "or and and", index.StatusActive, nil); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	removed, err := Remove(context.Background(), ix)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if want := []int{2}; !slices.Equal(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
}
