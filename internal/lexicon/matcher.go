package lexicon

import (
	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Category is one labelled group of trigger phrases. Matching is
// substring-based over normalized text, so multi-word triggers are
// supported.
type Category struct {
	Label    string
	Triggers []string
}

// Matcher matches text against an ordered list of categories in a single
// Aho-Corasick pass. Category order is preserved in all outputs, which
// keeps downstream frequency tables and rule chains deterministic.
type Matcher struct {
	categories []Category
	triggers   []string
	// triggerCategory maps a trigger index (in the automaton's pattern
	// order) back to its category index.
	triggerCategory []int
	matcher         *ahocorasick.Matcher
}

// NewMatcher builds a matcher from the given categories. Trigger phrases
// are normalized once at construction.
func NewMatcher(categories []Category) *Matcher {
	m := &Matcher{categories: categories}
	for ci, cat := range categories {
		for _, trig := range cat.Triggers {
			normalized := Normalize(trig)
			if normalized == "" {
				continue
			}
			m.triggers = append(m.triggers, normalized)
			m.triggerCategory = append(m.triggerCategory, ci)
		}
	}
	if len(m.triggers) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(m.triggers)
	}
	return m
}

// Labels returns the distinct category labels matched in text, in
// category declaration order.
func (m *Matcher) Labels(text string) []string {
	if m.matcher == nil {
		return nil
	}
	hits := m.matcher.Match([]byte(Normalize(text)))
	seen := make(map[int]bool, len(hits))
	for _, hit := range hits {
		if hit < len(m.triggerCategory) {
			seen[m.triggerCategory[hit]] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for ci, cat := range m.categories {
		if seen[ci] {
			labels = append(labels, cat.Label)
		}
	}
	return labels
}

// Count returns the number of distinct triggers found in text.
func (m *Matcher) Count(text string) int {
	if m.matcher == nil {
		return 0
	}
	return len(m.matcher.Match([]byte(Normalize(text))))
}

// Contains reports whether any trigger occurs in text.
func (m *Matcher) Contains(text string) bool {
	return m.Count(text) > 0
}
