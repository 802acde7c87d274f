// ABOUTME: Treebank-style word tokenizer: splits punctuation and English contractions
// ABOUTME: Keeps slash/hyphen compounds as one token so the alphabetic filter drops them

package textnorm

import "strings"

// splitChars are always separated into their own tokens.
const splitChars = ",;:@#$%&?!()[]{}<>\"`"

// contractionSuffixes are clitics split off the end of a word, longest first.
var contractionSuffixes = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

// Tokenize splits already-lowercased text into word and punctuation tokens.
// "don't stop." yields ["do", "n't", "stop", "."].
func Tokenize(text string) []string {
	var padded strings.Builder
	padded.Grow(len(text) + 16)
	for _, r := range text {
		if strings.ContainsRune(splitChars, r) {
			padded.WriteByte(' ')
			padded.WriteRune(r)
			padded.WriteByte(' ')
			continue
		}
		padded.WriteRune(r)
	}

	var tokens []string
	for field := range strings.FieldsSeq(padded.String()) {
		tokens = appendWord(tokens, field)
	}
	return tokens
}

// appendWord peels quotes and a final period off field, then splits a
// trailing contraction.
func appendWord(tokens []string, field string) []string {
	var trailing []string

	for len(field) > 1 && field[0] == '\'' {
		tokens = append(tokens, "'")
		field = field[1:]
	}
	for len(field) > 1 && (field[len(field)-1] == '.' || field[len(field)-1] == '\'') {
		trailing = append([]string{field[len(field)-1:]}, trailing...)
		field = field[:len(field)-1]
	}

	for _, suffix := range contractionSuffixes {
		if len(field) > len(suffix) && strings.HasSuffix(field, suffix) {
			tokens = append(tokens, field[:len(field)-len(suffix)], suffix)
			return append(tokens, trailing...)
		}
	}

	tokens = append(tokens, field)
	return append(tokens, trailing...)
}
