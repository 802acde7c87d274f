// ABOUTME: Shared vector space over intent examples, FAQ questions and catalog item names
// ABOUTME: Fits once on the concatenated corpora and memoizes query vectors per normalized text

package vectorspace

import (
	"github.com/patrickmn/go-cache"
)

// Normalizer turns raw text into the normalized form the model was fitted on.
type Normalizer interface {
	Normalize(text string, removeStopwords bool) string
}

// Space holds the fitted model and one reference matrix per corpus.
type Space struct {
	norm    Normalizer
	model   *Model
	queries *cache.Cache

	Intents Matrix
	FAQ     Matrix
	Catalog Matrix
}

// Build normalizes every row of the three corpora without stopword removal,
// fits one model over their concatenation (intents, then FAQ, then catalog)
// and slices the fitted rows back into per-corpus matrices.
func Build(norm Normalizer, intents, faq, catalog []string) *Space {
	docs := make([]string, 0, len(intents)+len(faq)+len(catalog))
	for _, group := range [][]string{intents, faq, catalog} {
		for _, text := range group {
			docs = append(docs, norm.Normalize(text, false))
		}
	}

	model := Fit(docs)
	rows := make(Matrix, len(docs))
	for i, doc := range docs {
		rows[i] = model.Embed(doc)
	}

	faqEnd := len(intents) + len(faq)
	return &Space{
		norm:    norm,
		model:   model,
		queries: cache.New(cache.NoExpiration, 0),
		Intents: rows[:len(intents):len(intents)],
		FAQ:     rows[len(intents):faqEnd:faqEnd],
		Catalog: rows[faqEnd:],
	}
}

// Model returns the fitted model.
func (s *Space) Model() *Model {
	return s.model
}

// Query normalizes text and embeds it in the fitted space.
func (s *Space) Query(text string, removeStopwords bool) Vector {
	return s.Embed(s.norm.Normalize(text, removeStopwords))
}

// Embed projects an already-normalized string, reusing earlier results.
func (s *Space) Embed(normalized string) Vector {
	if v, ok := s.queries.Get(normalized); ok {
		return v.(Vector)
	}
	v := s.model.Embed(normalized)
	s.queries.Set(normalized, v, cache.NoExpiration)
	return v
}

// CachedQueries returns how many distinct query vectors are memoized.
func (s *Space) CachedQueries() int {
	return s.queries.ItemCount()
}
