// ABOUTME: Sparse vectors, cosine similarity and best-match scoring against a reference matrix
// ABOUTME: Ranking is stable: equal scores keep corpus order, so the lowest index wins ties

package vectorspace

import (
	"cmp"
	"math"
	"slices"
)

// Vector is a sparse vector with strictly increasing Indices.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether v has no non-zero components.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Equal reports whether two vectors have identical components.
func (v Vector) Equal(o Vector) bool {
	return slices.Equal(v.Indices, o.Indices) && slices.Equal(v.Values, o.Values)
}

// Matrix is an ordered set of row vectors, one per corpus row.
type Matrix []Vector

// Match is one scored row of a Matrix.
type Match struct {
	Index int
	Score float64
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Cosine returns the cosine similarity of a and b; 0 if either is zero.
func Cosine(a, b Vector) float64 {
	na, nb := math.Sqrt(Dot(a, a)), math.Sqrt(Dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}

// ScoreAll scores q against every row of m and returns all rows sorted by
// descending similarity.
func ScoreAll(q Vector, m Matrix) []Match {
	matches := make([]Match, len(m))
	for i, row := range m {
		matches[i] = Match{Index: i, Score: Cosine(q, row)}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

// BestAboveThreshold returns the most similar row of m. ok is false when m
// is empty or the best score does not exceed threshold.
func BestAboveThreshold(q Vector, m Matrix, threshold float64) (best Match, ok bool) {
	if len(m) == 0 {
		return Match{}, false
	}
	best = Match{Index: 0, Score: Cosine(q, m[0])}
	for i := 1; i < len(m); i++ {
		if s := Cosine(q, m[i]); s > best.Score {
			best = Match{Index: i, Score: s}
		}
	}
	if best.Score <= threshold {
		return best, false
	}
	return best, true
}
