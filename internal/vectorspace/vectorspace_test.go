// ABOUTME: Tests for tf-idf fitting, cosine scoring, tie-breaking and the shared space
// ABOUTME: Uses the real normalizer so fit and query go through identical preprocessing

package vectorspace

import (
	"math"
	"testing"

	"github.com/mauromedda/grocer-go/internal/textnorm"
)

const eps = 1e-9

func TestFit_VocabularyAndIdf(t *testing.T) {
	t.Parallel()

	m := Fit([]string{"milk bread", "milk"})
	if m.Dim() != 2 {
		t.Fatalf("Dim() = %d; want 2", m.Dim())
	}
	if !m.Has("milk") || !m.Has("bread") {
		t.Fatalf("vocabulary missing terms: milk=%v bread=%v", m.Has("milk"), m.Has("bread"))
	}

	// milk appears in every document: idf = ln(3/3)+1 = 1.
	// bread appears in one: idf = ln(3/2)+1.
	v := m.Embed("bread milk")
	wantBread := math.Log(1.5) + 1
	norm := math.Sqrt(wantBread*wantBread + 1)
	if len(v.Values) != 2 {
		t.Fatalf("Embed returned %d components; want 2", len(v.Values))
	}
	if math.Abs(v.Values[0]-wantBread/norm) > eps || math.Abs(v.Values[1]-1/norm) > eps {
		t.Errorf("Embed values = %v; want [%f %f]", v.Values, wantBread/norm, 1/norm)
	}
}

func TestFit_SingleCharTermsIgnored(t *testing.T) {
	t.Parallel()

	m := Fit([]string{"i want a milk"})
	if m.Has("i") || m.Has("a") {
		t.Error("single-character terms must not enter the vocabulary")
	}
	if m.Dim() != 2 {
		t.Errorf("Dim() = %d; want 2", m.Dim())
	}
}

func TestEmbed_UnseenTermsAreZero(t *testing.T) {
	t.Parallel()

	m := Fit([]string{"milk"})
	if v := m.Embed("caviar truffle"); !v.IsZero() {
		t.Errorf("Embed of unseen terms = %+v; want zero vector", v)
	}
	if v := m.Embed(""); !v.IsZero() {
		t.Errorf("Embed(\"\") = %+v; want zero vector", v)
	}
}

func TestCosine(t *testing.T) {
	t.Parallel()

	a := Vector{Indices: []int{0, 2}, Values: []float64{3, 4}}
	b := Vector{Indices: []int{0, 2}, Values: []float64{6, 8}}
	c := Vector{Indices: []int{1}, Values: []float64{1}}

	if got := Cosine(a, b); math.Abs(got-1) > eps {
		t.Errorf("Cosine(parallel) = %f; want 1", got)
	}
	if got := Cosine(a, c); got != 0 {
		t.Errorf("Cosine(orthogonal) = %f; want 0", got)
	}
	if got := Cosine(a, Vector{}); got != 0 {
		t.Errorf("Cosine(zero) = %f; want 0", got)
	}
}

func TestScoreAll_StableTies(t *testing.T) {
	t.Parallel()

	row := Vector{Indices: []int{0}, Values: []float64{1}}
	other := Vector{Indices: []int{1}, Values: []float64{1}}
	m := Matrix{other, row, other, row}

	got := ScoreAll(row, m)
	wantOrder := []int{1, 3, 0, 2}
	for i, w := range wantOrder {
		if got[i].Index != w {
			t.Fatalf("ScoreAll order = %+v; want indices %v", got, wantOrder)
		}
	}
}

func TestBestAboveThreshold(t *testing.T) {
	t.Parallel()

	x := Vector{Indices: []int{0}, Values: []float64{1}}
	y := Vector{Indices: []int{1}, Values: []float64{1}}
	xy := Vector{Indices: []int{0, 1}, Values: []float64{1, 1}}

	tests := []struct {
		name      string
		q         Vector
		m         Matrix
		threshold float64
		wantIdx   int
		wantOK    bool
	}{
		{"exact match", x, Matrix{y, x}, 0.3, 1, true},
		{"first index wins tie", x, Matrix{x, x}, 0.3, 0, true},
		{"below threshold", x, Matrix{y}, 0.3, 0, false},
		{"score equal to threshold is no match", x, Matrix{xy}, 1 / math.Sqrt2, 0, false},
		{"zero query", Vector{}, Matrix{x, y}, 0.3, 0, false},
		{"empty matrix", x, nil, 0.3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := BestAboveThreshold(tt.q, tt.m, tt.threshold)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v; want %v (score %f)", ok, tt.wantOK, got.Score)
			}
			if ok && got.Index != tt.wantIdx {
				t.Errorf("Index = %d; want %d", got.Index, tt.wantIdx)
			}
		})
	}
}

func TestBuild_SlicesCorpora(t *testing.T) {
	t.Parallel()

	s := Build(textnorm.New(),
		[]string{"hello there", "i want to buy something"},
		[]string{"what is a stock market"},
		[]string{"whole milk", "brown bread", "whole milk"},
	)

	if len(s.Intents) != 2 || len(s.FAQ) != 1 || len(s.Catalog) != 3 {
		t.Fatalf("matrix sizes = %d/%d/%d; want 2/1/3", len(s.Intents), len(s.FAQ), len(s.Catalog))
	}

	best, ok := BestAboveThreshold(s.Query("Hello there!", false), s.Intents, 0.3)
	if !ok || best.Index != 0 {
		t.Errorf("best intent = %+v ok=%v; want index 0", best, ok)
	}
	if best.Score < 1-eps {
		t.Errorf("self-similarity = %f; want 1", best.Score)
	}

	ranked := ScoreAll(s.Query("some milk please", true), s.Catalog)
	if ranked[0].Index != 0 || ranked[1].Index != 2 {
		t.Errorf("catalog ranking = %+v; want duplicate milk rows first in corpus order", ranked)
	}
}

func TestSpace_QueryDeterministicAndMemoized(t *testing.T) {
	t.Parallel()

	s := Build(textnorm.New(), []string{"hello there"}, nil, []string{"milk"})

	a := s.Query("HELLO, there", false)
	b := s.Query("hello there.", false)
	if !a.Equal(b) {
		t.Errorf("equal normalizations embedded differently: %+v vs %+v", a, b)
	}
	if s.CachedQueries() != 1 {
		t.Errorf("CachedQueries() = %d; want 1", s.CachedQueries())
	}
}
