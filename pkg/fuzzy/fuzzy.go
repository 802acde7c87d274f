// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking names against a typed pattern
// ABOUTME: Results are best-first; Top caps the list for terminal listings

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int   // position in the searched slice
	MatchedIndexes []int // byte offsets of matched pattern characters
	Score          int
}

// Find performs fuzzy matching of pattern against items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	return convert(fuzzy.Find(pattern, items))
}

// Top returns at most limit matches; limit <= 0 means no cap.
func Top(pattern string, items []string, limit int) []Match {
	matches := Find(pattern, items)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
