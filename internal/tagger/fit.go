package tagger

import (
	"math"
	"strings"

	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// Fit-score signal weights. Each offer signal contributes its weight to
// the denominator whether or not it matches, so the score reflects how
// much of the offer's messaging surface the record covers.
const (
	painWeight           = 1.0
	jobWeight            = 0.5
	keywordWeight        = 0.3
	transformationWeight = 0.5

	// minSignificantLen filters out stopword-length tokens; significant
	// words are longer than 3 characters.
	minSignificantLen = 4
	// minWordOverlap is the distinct-word threshold for phrase signals
	// (jobs-to-be-done, transformations).
	minWordOverlap = 2
)

// fitScore measures how well the record's text matches the offer's
// pains, jobs-to-be-done, keywords and transformations. Result is in
// [0,1], rounded to 3 decimals; empty text scores 0.
func (t *Tagger) fitScore(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	normalized := lexicon.Normalize(text)

	var num, den float64
	for _, pain := range t.offer.Pains {
		den += painWeight
		if anySignificantWord(normalized, pain) {
			num += painWeight
		}
	}
	for _, job := range t.offer.JobsToBeDone {
		den += jobWeight
		if wordOverlap(normalized, job) >= minWordOverlap {
			num += jobWeight
		}
	}
	for _, kw := range t.offer.Keywords {
		den += keywordWeight
		if strings.Contains(normalized, lexicon.Normalize(kw)) {
			num += keywordWeight
		}
	}
	for _, transformation := range t.offer.Transformations {
		den += transformationWeight
		if wordOverlap(normalized, transformation) >= minWordOverlap {
			num += transformationWeight
		}
	}

	return round3(num / math.Max(den, 1.0))
}

// anySignificantWord reports whether any significant word of phrase
// occurs as a substring of the normalized text.
func anySignificantWord(text, phrase string) bool {
	for _, word := range significantWords(phrase) {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// wordOverlap counts how many distinct significant words of phrase occur
// in the normalized text.
func wordOverlap(text, phrase string) int {
	count := 0
	for _, word := range significantWords(phrase) {
		if strings.Contains(text, word) {
			count++
		}
	}
	return count
}

// significantWords splits a phrase into distinct normalized words longer
// than 3 characters, preserving first-seen order.
func significantWords(phrase string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, field := range strings.Fields(lexicon.Normalize(phrase)) {
		word := strings.Trim(field, ".,!?:;\"'()")
		if len([]rune(word)) < minSignificantLen || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
