package lexicon

import (
	"strings"
	"unicode"
)

// WordSet matches a flat list of triggers at word boundaries over
// normalized text. Single-word triggers only match whole tokens, so
// "app" does not fire inside "happy"; multi-word triggers match as a
// run of consecutive tokens. The awareness rules count distinct hits
// against these sets.
type WordSet struct {
	// triggers holds each trigger as its token sequence, in declaration
	// order with duplicates removed.
	triggers [][]string
}

// NewWordSet builds a word set from the given trigger words or phrases.
// Triggers are normalized and tokenized once at construction.
func NewWordSet(words []string) *WordSet {
	w := &WordSet{}
	seen := make(map[string]bool, len(words))
	for _, trig := range words {
		tokens := tokenize(trig)
		if len(tokens) == 0 {
			continue
		}
		key := strings.Join(tokens, " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		w.triggers = append(w.triggers, tokens)
	}
	return w
}

// Count returns the number of distinct triggers found in text.
func (w *WordSet) Count(text string) int {
	if len(w.triggers) == 0 {
		return 0
	}
	tokens := tokenize(text)
	count := 0
	for _, trig := range w.triggers {
		if containsTokens(tokens, trig) {
			count++
		}
	}
	return count
}

// Contains reports whether any trigger occurs in text.
func (w *WordSet) Contains(text string) bool {
	return w.Count(text) > 0
}

// tokenize splits text into normalized word tokens. Letters and digits
// are word runes, everything else separates, so "risk-free" and
// "risk free" tokenize identically.
func tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsTokens reports whether trig occurs as a consecutive run
// within tokens.
func containsTokens(tokens, trig []string) bool {
	if len(trig) == 0 || len(trig) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(trig) <= len(tokens); i++ {
		for j, word := range trig {
			if tokens[i+j] != word {
				continue outer
			}
		}
		return true
	}
	return false
}
