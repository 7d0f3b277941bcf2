package ranker

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/creative-radar/internal/domain"
)

// maxRationaleFragments caps the number of reason fragments joined into
// the rationale string.
const maxRationaleFragments = 5

// lowSignalRationale is returned when no reason fragment applies.
const lowSignalRationale = "Low signal — reference only"

// Notable engagement thresholds for the rationale.
const (
	notableShares   = 50
	notableComments = 20
)

// buildRationale assembles the ordered human-readable explanation of why
// the record ranked where it did.
func (e *Engine) buildRationale(item *domain.ContentItem, tags *domain.Tags, s *domain.Scores) string {
	var fragments []string

	switch {
	case s.Fit > strongFitThreshold:
		fragments = append(fragments, fitFragment("strong offer fit", tags.PainPoints))
	case s.Fit > moderateFitThreshold:
		fragments = append(fragments, fitFragment("moderate offer fit", tags.PainPoints))
	case s.Fit > 0:
		fragments = append(fragments, fitFragment("touches the offer's themes", tags.PainPoints))
	}

	switch {
	case item.Shares > notableShares:
		fragments = append(fragments, fmt.Sprintf("%d shares", item.Shares))
	case item.Comments > notableComments:
		fragments = append(fragments, fmt.Sprintf("%d comments", item.Comments))
	case s.Performance >= engStrongScore:
		fragments = append(fragments, "strong engagement")
	case s.Performance > 0 && !item.HasEngagement():
		fragments = append(fragments, "long-running ad")
	}

	if tags.AwarenessStage != domain.StageUnclassified {
		fragments = append(fragments, tags.AwarenessStage+" angle")
	}
	if tags.HookType != domain.HookUnknown && tags.HookType != domain.HookStatement {
		fragments = append(fragments, tags.HookType+" hook")
	}

	if tags.ContentType == domain.ContentTypeVideo && e.offer.PrefersVideo() {
		fragments = append(fragments, "format matches offer")
	} else if tags.ContentType == domain.ContentTypeImage && e.offer.PrefersImage() {
		fragments = append(fragments, "format matches offer")
	}

	if s.Repeatability > reuseCloneMinRepeat {
		fragments = append(fragments, "highly repeatable structure")
	}
	if s.Risk > riskWarnThreshold {
		fragments = append(fragments, "brand-safety risk")
	}
	if item.Source != "" {
		fragments = append(fragments, "via "+item.Source)
	}

	if len(fragments) == 0 {
		return lowSignalRationale
	}
	if len(fragments) > maxRationaleFragments {
		fragments = fragments[:maxRationaleFragments]
	}
	return strings.Join(fragments, " + ")
}

// fitFragment optionally annotates the fit tier with the matched pain
// categories.
func fitFragment(tier string, pains []string) string {
	if len(pains) == 0 {
		return tier
	}
	return fmt.Sprintf("%s (pains: %s)", tier, strings.Join(pains, ", "))
}
