// ABOUTME: Reference tables the agent matches against: intent examples, FAQ entries, grocery rows
// ABOUTME: Loads the three CSV files concurrently from a directory or the embedded defaults

package dataset

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
)

//go:embed data/*.csv
var embedded embed.FS

// ErrMissingColumn is returned when a table lacks a required header.
var ErrMissingColumn = errors.New("missing column")

// Default file names inside a data directory.
const (
	IntentsFile   = "dialogue.csv"
	FAQFile       = "faq.csv"
	GroceriesFile = "groceries.csv"
)

// IntentExample is one labelled example utterance.
type IntentExample struct {
	Text   string
	Intent string
}

// FAQEntry is one question with its canned answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// GroceryRow is one purchase-history row: an item bought by a member at a unit price.
// The same item appears in many rows.
type GroceryRow struct {
	MemberID string
	Date     string
	Item     string
	Price    float64
}

// Corpus bundles the three reference tables. It is read-only once loaded.
type Corpus struct {
	Intents   []IntentExample
	FAQ       []FAQEntry
	Groceries []GroceryRow
}

// IntentTexts returns the example utterances in table order.
func (c *Corpus) IntentTexts() []string {
	out := make([]string, len(c.Intents))
	for i, e := range c.Intents {
		out[i] = e.Text
	}
	return out
}

// Questions returns the FAQ questions in table order.
func (c *Corpus) Questions() []string {
	out := make([]string, len(c.FAQ))
	for i, e := range c.FAQ {
		out[i] = e.Question
	}
	return out
}

// ItemNames returns the grocery item descriptions in table order.
func (c *Corpus) ItemNames() []string {
	out := make([]string, len(c.Groceries))
	for i, r := range c.Groceries {
		out[i] = r.Item
	}
	return out
}

// Load reads the three tables from dir. An empty dir selects the embedded defaults.
func Load(ctx context.Context, dir string) (*Corpus, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("opening embedded data: %w", err)
		}
		return LoadFS(ctx, sub)
	}
	return LoadFS(ctx, os.DirFS(dir))
}

// LoadFS reads the three tables from fsys in parallel.
func LoadFS(ctx context.Context, fsys fs.FS) (*Corpus, error) {
	var c Corpus
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := readIntents(fsys, IntentsFile)
		if err != nil {
			return fmt.Errorf("loading intents: %w", err)
		}
		c.Intents = rows
		return nil
	})
	g.Go(func() error {
		rows, err := readFAQ(fsys, FAQFile)
		if err != nil {
			return fmt.Errorf("loading faq: %w", err)
		}
		c.FAQ = rows
		return nil
	})
	g.Go(func() error {
		rows, err := readGroceries(fsys, GroceriesFile)
		if err != nil {
			return fmt.Errorf("loading groceries: %w", err)
		}
		c.Groceries = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}
