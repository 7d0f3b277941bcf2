package tagger

import (
	"strings"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// Shared word-set matchers for the offer-independent awareness rules.
// Built once; matchers are read-only after construction.
var (
	objectionSet = lexicon.NewWordSet(lexicon.ObjectionWords)
	featureSet   = lexicon.NewWordSet(lexicon.FeatureWords)
	emotionalSet = lexicon.NewWordSet(lexicon.EmotionalWords)
)

// minDistinctHits is the distinct-word threshold shared by the
// solution/problem/unaware rules.
const minDistinctHits = 2

// classifyAwareness places a record on the five-stage awareness funnel.
// Rules are evaluated top-down, first satisfied rule wins:
//
//  1. most_aware:     offer named + objection-handling language
//  2. product_aware:  offer named + feature/demo language
//  3. solution_aware: >= 2 distinct mechanism/system words
//  4. problem_aware:  >= 2 distinct named-pain words from the offer
//  5. unaware:        >= 2 distinct emotional words and zero mechanism words
//
// Anything else is unclassified.
func (t *Tagger) classifyAwareness(text string) string {
	if strings.TrimSpace(text) == "" {
		return domain.StageUnclassified
	}

	offerNamed := t.offer.Name != "" &&
		strings.Contains(lexicon.Normalize(text), lexicon.Normalize(t.offer.Name))
	mechanismHits := t.mechanism.Count(text)

	switch {
	case offerNamed && objectionSet.Contains(text):
		return domain.StageMostAware
	case offerNamed && featureSet.Contains(text):
		return domain.StageProductAware
	case mechanismHits >= minDistinctHits:
		return domain.StageSolutionAware
	case t.painWords.Count(text) >= minDistinctHits:
		return domain.StageProblemAware
	case emotionalSet.Count(text) >= minDistinctHits && mechanismHits == 0:
		return domain.StageUnaware
	default:
		return domain.StageUnclassified
	}
}
