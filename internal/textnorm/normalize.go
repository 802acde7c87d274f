// ABOUTME: Text normalizer shared by vector-space fitting and every later query
// ABOUTME: NFKC + lowercase, treebank-style tokens, alphabetic filter, optional stopwords, Porter2 stems

package textnorm

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/unicode/norm"
)

// Normalizer turns raw text into a space-joined string of stems.
// The zero value is not usable; call New.
type Normalizer struct {
	stopwords map[string]struct{}
}

// New returns a Normalizer using the English stopword list.
func New() *Normalizer {
	return &Normalizer{stopwords: englishStopwords}
}

// Normalize lowercases, tokenizes and stems text. Tokens that are not made
// only of letters (numbers, punctuation, "rolls/buns") are dropped whole.
// When removeStopwords is set, stopwords are removed before stemming.
func (n *Normalizer) Normalize(text string, removeStopwords bool) string {
	tokens := Tokenize(strings.ToLower(norm.NFKC.String(text)))

	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isAlpha(tok) {
			continue
		}
		if removeStopwords {
			if _, stop := n.stopwords[tok]; stop {
				continue
			}
		}
		stems = append(stems, english.Stem(tok, true))
	}
	return strings.Join(stems, " ")
}

// IsStopword reports whether the lowercase token is on the stopword list.
func (n *Normalizer) IsStopword(token string) bool {
	_, ok := n.stopwords[token]
	return ok
}

// isAlpha reports whether s is non-empty and every rune is a letter.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
