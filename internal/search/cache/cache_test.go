package cache

import (
	"testing"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/query"
)

func TestBuildKeyDeterministic(t *testing.T) {
	q := query.Query{Plus: []string{"cat", "dog"}, Minus: []string{"tail"}}
	if buildKey(q, index.StatusActive) != buildKey(q, index.StatusActive) {
		t.Error("identical queries produced different keys")
	}
}

func TestBuildKeyDistinguishesInputs(t *testing.T) {
	base := query.Query{Plus: []string{"cat", "dog"}}
	cases := []struct {
		name   string
		q      query.Query
		status index.Status
	}{
		{"different plus terms", query.Query{Plus: []string{"cat"}}, index.StatusActive},
		{"minus added", query.Query{Plus: []string{"cat", "dog"}, Minus: []string{"x"}}, index.StatusActive},
		{"different status", base, index.StatusBanned},
	}
	baseKey := buildKey(base, index.StatusActive)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if buildKey(tc.q, tc.status) == baseKey {
				t.Error("distinct inputs collided")
			}
		})
	}
}
