// ABOUTME: TF-IDF model: fixed vocabulary and smoothed idf fitted once over normalized documents
// ABOUTME: Embed projects any normalized string into the fitted space; unseen terms weigh zero

package vectorspace

import (
	"math"
	"regexp"
	"slices"
)

// termPattern selects analyzer terms: runs of two or more word characters.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Model is a fitted vocabulary with per-term inverse document frequency.
// It is immutable after Fit.
type Model struct {
	vocab map[string]int
	idf   []float64
}

// Fit builds the vocabulary and idf weights from docs. Vocabulary indices
// follow sorted term order, so equal input yields an identical model.
// idf(t) = ln((1+n)/(1+df(t))) + 1.
func Fit(docs []string) *Model {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range terms(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	slices.Sort(vocabulary)

	n := float64(len(docs))
	m := &Model{
		vocab: make(map[string]int, len(vocabulary)),
		idf:   make([]float64, len(vocabulary)),
	}
	for i, term := range vocabulary {
		m.vocab[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return m
}

// Dim returns the number of vocabulary terms.
func (m *Model) Dim() int {
	return len(m.idf)
}

// Has reports whether term is in the fitted vocabulary.
func (m *Model) Has(term string) bool {
	_, ok := m.vocab[term]
	return ok
}

// Embed returns the L2-normalized tf-idf vector of a normalized string.
func (m *Model) Embed(normalized string) Vector {
	counts := make(map[int]float64)
	for _, term := range terms(normalized) {
		if idx, ok := m.vocab[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	v := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		v.Indices = append(v.Indices, idx)
	}
	slices.Sort(v.Indices)

	var sumSq float64
	for _, idx := range v.Indices {
		w := counts[idx] * m.idf[idx]
		v.Values = append(v.Values, w)
		sumSq += w * w
	}
	norm := math.Sqrt(sumSq)
	for i := range v.Values {
		v.Values[i] /= norm
	}
	return v
}

func terms(doc string) []string {
	return termPattern.FindAllString(doc, -1)
}
