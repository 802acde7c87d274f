// ABOUTME: Canned reply sets keyed by intent label, loaded from YAML
// ABOUTME: Embedded defaults can be overridden per label by a user-supplied file

package responses

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed responses.yaml
var defaultYAML []byte

// Set maps an intent label to its alternative replies.
type Set map[string][]string

// Default returns the built-in replies.
func Default() (Set, error) {
	return Parse(defaultYAML)
}

// Parse decodes a YAML mapping of label -> list of replies.
func Parse(data []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse responses YAML: %w", err)
	}
	for label, replies := range s {
		if len(replies) == 0 {
			return nil, fmt.Errorf("responses for %q: empty list", label)
		}
	}
	if s == nil {
		s = Set{}
	}
	return s, nil
}

// Load returns the defaults with every label present in the file at path
// replacing the built-in list. An empty path returns the defaults.
func Load(path string) (Set, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses: %w", err)
	}
	override, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for label, replies := range override {
		base[label] = replies
	}
	return base, nil
}

// Pick returns a uniformly chosen reply for label.
func (s Set) Pick(label string, rng *rand.Rand) (string, bool) {
	replies := s[label]
	if len(replies) == 0 {
		return "", false
	}
	return replies[rng.IntN(len(replies))], true
}

// First returns the first reply for label.
func (s Set) First(label string) (string, bool) {
	replies := s[label]
	if len(replies) == 0 {
		return "", false
	}
	return replies[0], true
}
