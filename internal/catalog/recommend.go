// ABOUTME: Co-purchase recommendation: items most often bought by members who bought a given item
// ABOUTME: Picks uniformly among the top three candidates; randomness is injected by the caller

package catalog

import (
	"math/rand/v2"
	"slices"
)

// recommendPool is how many top co-purchased items a recommendation is drawn from.
const recommendPool = 3

// CoPurchased returns items bought by any member who bought item, excluding
// item itself, ordered by how many of those members' rows name them (most
// first, ties by first appearance in the table).
func (c *Catalog) CoPurchased(item string) []string {
	var idx []int
	seen := make(map[string]bool)
	for _, i := range c.byItem[item] {
		m := c.rows[i].MemberID
		if seen[m] {
			continue
		}
		seen[m] = true
		idx = append(idx, c.byMember[m]...)
	}
	if len(idx) == 0 {
		return nil
	}
	slices.Sort(idx)

	counts := make(map[string]int)
	first := make(map[string]int)
	for _, i := range idx {
		name := c.rows[i].Item
		if name == item {
			continue
		}
		if _, ok := first[name]; !ok {
			first[name] = i
		}
		counts[name]++
	}

	out := make([]string, 0, len(counts))
	for name := range counts {
		out = append(out, name)
	}
	slices.SortFunc(out, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return first[a] - first[b]
	})
	return out
}

// Recommend picks one of the top co-purchased items for item. ok is false
// when nobody who bought item bought anything else.
func (c *Catalog) Recommend(item string, rng *rand.Rand) (string, bool) {
	candidates := c.CoPurchased(item)
	if len(candidates) == 0 {
		return "", false
	}
	pool := min(recommendPool, len(candidates))
	return candidates[rng.IntN(pool)], true
}
