package tagger

import (
	"reflect"
	"testing"

	"github.com/jonesrussell/creative-radar/internal/domain"
)

func TestFitScore_EmptyOfferClampsDenominator(t *testing.T) {
	// All offer lists empty: denominator would be 0 without the clamp.
	tg := New(&domain.OfferSpec{}, &mockLogger{})

	if got := tg.fitScore("any text at all"); got != 0 {
		t.Errorf("fitScore = %v, want 0 with empty offer", got)
	}
}

func TestFitScore_KeywordExactSubstring(t *testing.T) {
	offer := &domain.OfferSpec{Keywords: []string{"keep in touch"}}
	tg := New(offer, &mockLogger{})

	// Single keyword: den clamps to 1.0, num is the keyword weight.
	if got := tg.fitScore("the best way to keep in touch"); got != 0.3 {
		t.Errorf("fitScore = %v, want 0.3", got)
	}
	if got := tg.fitScore("keeping touch is different wording"); got != 0 {
		t.Errorf("fitScore = %v, want 0 without exact substring", got)
	}
}

func TestFitScore_PhraseOverlapThreshold(t *testing.T) {
	offer := &domain.OfferSpec{JobsToBeDone: []string{"stay close without feeling forced"}}
	tg := New(offer, &mockLogger{})

	// One significant word overlapping is below the threshold.
	if got := tg.fitScore("I want to stay consistent"); got != 0 {
		t.Errorf("fitScore = %v, want 0 for single-word overlap", got)
	}
	// Two distinct significant words overlap.
	if got := tg.fitScore("stay close to the people who matter"); got != 0.5 {
		t.Errorf("fitScore = %v, want 0.5 for two-word overlap", got)
	}
}

func TestSignificantWords(t *testing.T) {
	got := significantWords("Stay close, without feeling forced! close")
	want := []string{"stay", "close", "without", "feeling", "forced"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("significantWords = %v, want %v", got, want)
	}
}
