// ABOUTME: Nearest-example intent classifier over the shared tf-idf space.
// ABOUTME: Returns the best example's label when it scores above the threshold, else Unknown.

package intent

import (
	"github.com/mauromedda/grocer-go/internal/dataset"
	pilog "github.com/mauromedda/grocer-go/internal/log"
	"github.com/mauromedda/grocer-go/internal/vectorspace"
)

// DefaultThreshold is the minimum similarity (exclusive) for intent and FAQ matches.
const DefaultThreshold = 0.3

// ClassifierConfig holds configuration for the intent classifier.
type ClassifierConfig struct {
	Threshold float64 // Similarity must exceed this (default 0.3).
}

// Classifier maps free text to the label of its most similar example.
type Classifier struct {
	config   ClassifierConfig
	space    *vectorspace.Space
	examples []dataset.IntentExample
}

// NewClassifier creates a classifier over the intent rows of space, applying defaults.
// examples must be the table the space's Intents matrix was built from.
func NewClassifier(cfg ClassifierConfig, space *vectorspace.Space, examples []dataset.IntentExample) *Classifier {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Classifier{config: cfg, space: space, examples: examples}
}

// Classify determines the intent of a user message. Stopwords are kept:
// short phrases like "what can you do" are mostly stopwords.
func (c *Classifier) Classify(input string) Classification {
	q := c.space.Query(input, false)
	best, ok := vectorspace.BestAboveThreshold(q, c.space.Intents, c.config.Threshold)
	if !ok {
		pilog.Debug("intent: %q -> unknown (best %.3f)", input, best.Score)
		return Classification{Label: Unknown, Score: best.Score, Index: -1}
	}

	ex := c.examples[best.Index]
	pilog.Debug("intent: %q -> %s (%.3f via %q)", input, ex.Intent, best.Score, ex.Text)
	return Classification{
		Label:   Label(ex.Intent),
		Score:   best.Score,
		Example: ex.Text,
		Index:   best.Index,
	}
}

// Threshold returns the effective similarity threshold.
func (c *Classifier) Threshold() float64 {
	return c.config.Threshold
}
