// ABOUTME: Tests for tokenization, alphabetic filtering, stopword removal and stemming
// ABOUTME: Table-driven; checks normalization is deterministic across surface variations

package textnorm

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain words", "buy some milk", []string{"buy", "some", "milk"}},
		{"contraction", "don't stop.", []string{"do", "n't", "stop", "."}},
		{"clitic pronoun", "i'm hungry", []string{"i", "'m", "hungry"}},
		{"comma split", "milk, bread", []string{"milk", ",", "bread"}},
		{"question mark", "what is this?", []string{"what", "is", "this", "?"}},
		{"slash compound stays whole", "rolls/buns", []string{"rolls/buns"}},
		{"digits stay whole", "5kg of flour", []string{"5kg", "of", "flour"}},
		{"quoted word", "'milk'", []string{"'", "milk", "'"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := New()
	tests := []struct {
		name            string
		input           string
		removeStopwords bool
		want            string
	}{
		{"lowercases and drops punctuation", "Milk!", false, "milk"},
		{"drops numbers", "2 bread", false, "bread"},
		{"stopwords removed", "I want the milk", true, "want milk"},
		{"compound token dropped", "rolls/buns", false, ""},
		{"only punctuation", "?!", false, ""},
		{"fullwidth letters folded", "ｍｉｌｋ", false, "milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Normalize(tt.input, tt.removeStopwords); got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q; want %q", tt.input, tt.removeStopwords, got, tt.want)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	n := New()
	variants := []string{"Hello there", "HELLO THERE!", "  hello,   there  ", "hello there."}
	want := n.Normalize(variants[0], false)
	for _, v := range variants[1:] {
		if got := n.Normalize(v, false); got != want {
			t.Errorf("Normalize(%q) = %q; want %q", v, got, want)
		}
	}
}

func TestNormalize_StemsInflections(t *testing.T) {
	t.Parallel()

	n := New()
	if a, b := n.Normalize("apples", false), n.Normalize("apple", false); a != b {
		t.Errorf("apples -> %q, apple -> %q; want equal stems", a, b)
	}
	if a, b := n.Normalize("buying", false), n.Normalize("buy", false); a != b {
		t.Errorf("buying -> %q, buy -> %q; want equal stems", a, b)
	}
}

func TestIsStopword(t *testing.T) {
	t.Parallel()

	n := New()
	for _, w := range []string{"the", "i", "some", "won't"} {
		if !n.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false; want true", w)
		}
	}
	if n.IsStopword("milk") {
		t.Error("IsStopword(\"milk\") = true; want false")
	}
}
