// ABOUTME: FAQ lookup reusing the intent matching mechanism against FAQ questions.
// ABOUTME: Falls back to a fixed apology when no question is similar enough.

package intent

import (
	"github.com/mauromedda/grocer-go/internal/dataset"
	"github.com/mauromedda/grocer-go/internal/vectorspace"
)

// FAQFallback is returned when no question scores above the threshold.
const FAQFallback = "Sorry, I don't know about this."

// FAQ answers questions from the FAQ table.
type FAQ struct {
	threshold float64
	space     *vectorspace.Space
	entries   []dataset.FAQEntry
}

// NewFAQ creates an answerer over the FAQ rows of space. A zero threshold
// selects DefaultThreshold.
func NewFAQ(threshold float64, space *vectorspace.Space, entries []dataset.FAQEntry) *FAQ {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &FAQ{threshold: threshold, space: space, entries: entries}
}

// Answer returns the answer of the most similar question, or FAQFallback
// with ok=false.
func (f *FAQ) Answer(input string) (answer string, ok bool) {
	q := f.space.Query(input, false)
	best, ok := vectorspace.BestAboveThreshold(q, f.space.FAQ, f.threshold)
	if !ok {
		return FAQFallback, false
	}
	return f.entries[best.Index].Answer, true
}
