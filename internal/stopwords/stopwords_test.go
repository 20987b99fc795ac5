package stopwords

import "testing"

func TestSet(t *testing.T) {
	s := New([]string{"and", "in", "on", "and", ""})
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	for _, word := range []string{"and", "in", "on"} {
		if !s.Contains(word) {
			t.Errorf("Contains(%q) = false, want true", word)
		}
	}
	if s.Contains("cat") {
		t.Error("Contains(\"cat\") = true, want false")
	}
	if s.Contains("") {
		t.Error("Contains(\"\") = true, want false")
	}
}

func TestFromText(t *testing.T) {
	s := FromText("and  in on and")
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if !s.Contains("in") {
		t.Error("Contains(\"in\") = false, want true")
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Contains("and") {
		t.Error("nil set Contains(\"and\") = true, want false")
	}
	if s.Len() != 0 {
		t.Errorf("nil set Len() = %d, want 0", s.Len())
	}
}
