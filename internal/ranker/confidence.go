package ranker

import (
	"math"

	"github.com/jonesrussell/creative-radar/internal/domain"
)

// Confidence bonuses. Confidence estimates how explainable the ranking
// is for this record, not how good the content is: a record with rich
// metadata and engagement earns a higher confidence than a sparse
// ad-library row even when both score the same total.
const (
	confidenceBase        = 0.1
	confidenceText        = 0.15
	confidenceAuthor      = 0.1
	confidenceEngagement  = 0.15
	confidenceURL         = 0.05
	confidencePrimarySrc  = 0.15
	confidenceSecondary   = 0.1
	confidenceAdLibrary   = 0.05
	confidenceStrongFit   = 0.15
	confidenceModerateFit = 0.1
	confidenceWeakFit     = 0.05
	confidenceStage       = 0.1

	strongFitThreshold   = 0.2
	moderateFitThreshold = 0.1
)

// confidenceScore builds the additive confidence estimate, clamped to
// [0,1] and rounded to 2 decimals.
func (e *Engine) confidenceScore(item *domain.ContentItem, tags *domain.Tags) float64 {
	score := confidenceBase
	if item.Text != "" {
		score += confidenceText
	}
	if item.Author != "" {
		score += confidenceAuthor
	}
	if item.HasEngagement() {
		score += confidenceEngagement
	}
	if item.URL != "" {
		score += confidenceURL
	}

	switch domain.SourceKindOf(item.Source) {
	case domain.SourceOrganicPrimary:
		if item.HasEngagement() {
			score += confidencePrimarySrc
		}
	case domain.SourceOrganicSecondary:
		score += confidenceSecondary
	case domain.SourceAdLibrary:
		if !item.HasEngagement() {
			score += confidenceAdLibrary
		}
	}

	switch {
	case tags.FitScore > strongFitThreshold:
		score += confidenceStrongFit
	case tags.FitScore > moderateFitThreshold:
		score += confidenceModerateFit
	case tags.FitScore > 0:
		score += confidenceWeakFit
	}

	if tags.AwarenessStage != domain.StageUnclassified {
		score += confidenceStage
	}

	return round2(clamp01(score))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
