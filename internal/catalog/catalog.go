// ABOUTME: Read-only view over purchase-history rows: distinct items, stock samples, fuzzy search
// ABOUTME: Rows repeat items across members; names are the identity used by the cart

package catalog

import (
	"math/rand/v2"

	"github.com/mauromedda/grocer-go/internal/dataset"
	"github.com/mauromedda/grocer-go/pkg/fuzzy"
)

// Catalog indexes grocery rows by item name and by member.
type Catalog struct {
	rows     []dataset.GroceryRow
	names    []string         // distinct, first-seen order
	firstRow map[string]int   // item name -> first row index
	byMember map[string][]int // member id -> row indexes
	byItem   map[string][]int // item name -> row indexes
}

// New indexes rows. The slice is retained and must not be modified afterwards.
func New(rows []dataset.GroceryRow) *Catalog {
	c := &Catalog{
		rows:     rows,
		firstRow: make(map[string]int),
		byMember: make(map[string][]int),
		byItem:   make(map[string][]int),
	}
	for i, r := range rows {
		if _, ok := c.firstRow[r.Item]; !ok {
			c.firstRow[r.Item] = i
			c.names = append(c.names, r.Item)
		}
		c.byMember[r.MemberID] = append(c.byMember[r.MemberID], i)
		c.byItem[r.Item] = append(c.byItem[r.Item], i)
	}
	return c
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.rows)
}

// Row returns row i.
func (c *Catalog) Row(i int) dataset.GroceryRow {
	return c.rows[i]
}

// Names returns the distinct item names in first-seen order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Price returns the unit price of the first row for name.
func (c *Catalog) Price(name string) (float64, bool) {
	i, ok := c.firstRow[name]
	if !ok {
		return 0, false
	}
	return c.rows[i].Price, true
}

// Sample draws n rows uniformly without replacement, then drops repeated
// item names, so fewer than n items may come back.
func (c *Catalog) Sample(n int, rng *rand.Rand) []dataset.GroceryRow {
	if n > len(c.rows) {
		n = len(c.rows)
	}
	picked := rng.Perm(len(c.rows))[:n]

	seen := make(map[string]bool, n)
	out := make([]dataset.GroceryRow, 0, n)
	for _, i := range picked {
		r := c.rows[i]
		if seen[r.Item] {
			continue
		}
		seen[r.Item] = true
		out = append(out, r)
	}
	return out
}

// Search fuzzy-matches pattern against the distinct item names.
func (c *Catalog) Search(pattern string, limit int) []string {
	matches := fuzzy.Top(pattern, c.names, limit)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
