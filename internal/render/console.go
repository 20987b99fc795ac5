// Package render formats search results for console output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/ranking"
)

// Document writes one ranked result.
func Document(w io.Writer, doc ranking.Document) {
	fmt.Fprintf(w, "{ document_id = %d, relevance = %g, rating = %d }\n",
		doc.ID, doc.Relevance, doc.Rating)
}

// TopDocuments writes a query header followed by each ranked result.
func TopDocuments(w io.Writer, rawQuery string, docs []ranking.Document) {
	fmt.Fprintf(w, "Results for query: %s\n", rawQuery)
	for _, doc := range docs {
		Document(w, doc)
	}
}

// MatchResult writes a document's matched query words and status.
func MatchResult(w io.Writer, id int, words []string, status index.Status) {
	fmt.Fprintf(w, "{ document_id = %d, status = %s, words = %s }\n",
		id, status, strings.Join(words, " "))
}
