// Package tagger classifies a single content record against an OfferSpec,
// producing hook, funnel-stage, pain-point, CTA and fit tags. It has no
// side effects and performs no I/O; tagging the same (offer, item) pair
// twice yields identical output.
package tagger

import (
	"strings"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// Logger defines the logging interface used by the tagger.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Tagger classifies content records against one offer. The lexicon
// matchers derived from the offer are built once at construction.
type Tagger struct {
	offer *domain.OfferSpec
	// pains matches the fixed pain-category lexicon.
	pains *lexicon.Matcher
	// painWords matches the significant words of the offer's own named
	// pains; the problem_aware rule counts distinct hits against it.
	painWords *lexicon.WordSet
	// mechanism matches the fixed mechanism lexicon plus the offer's
	// declared mechanism words.
	mechanism *lexicon.WordSet
	logger    Logger
}

// New creates a tagger bound to one offer.
func New(offer *domain.OfferSpec, logger Logger) *Tagger {
	painWords := make([]string, 0, len(offer.Pains)*2)
	for _, pain := range offer.Pains {
		painWords = append(painWords, significantWords(pain)...)
	}
	mechanismWords := append([]string{}, lexicon.MechanismWords...)
	mechanismWords = append(mechanismWords, significantWords(offer.Mechanism)...)

	return &Tagger{
		offer:     offer,
		pains:     lexicon.NewMatcher(lexicon.PainCategories),
		painWords: lexicon.NewWordSet(painWords),
		mechanism: lexicon.NewWordSet(mechanismWords),
		logger:    logger,
	}
}

// Tag classifies one record. The returned Tags value is reproducible
// purely from (OfferSpec, ContentItem).
func (t *Tagger) Tag(item *domain.ContentItem) (*domain.Tags, error) {
	line := hookLine(item.Text)

	tags := &domain.Tags{
		HookType:       classifyHook(line),
		HookLine:       line,
		AwarenessStage: t.classifyAwareness(item.Text),
		PainPoints:     t.matchPains(item.Text),
		CTAType:        classifyCTA(item.Text),
		ContentType:    contentType(item),
		WordCount:      len(strings.Fields(item.Text)),
		HasEmoji:       hasEmoji(item.Text),
	}
	tags.FitScore = t.fitScore(item.Text)

	t.logger.Debug("record tagged",
		"item_id", item.DedupeKey(),
		"hook_type", tags.HookType,
		"awareness_stage", tags.AwarenessStage,
		"cta_type", tags.CTAType,
		"fit_score", tags.FitScore,
	)
	return tags, nil
}

// matchPains returns the matched pain categories, never nil so the JSON
// output is a stable empty list.
func (t *Tagger) matchPains(text string) []string {
	labels := t.pains.Labels(text)
	if labels == nil {
		return []string{}
	}
	return labels
}

// contentType resolves the coarse content type from the item's flags.
func contentType(item *domain.ContentItem) string {
	switch {
	case item.HasVideo:
		return domain.ContentTypeVideo
	case item.HasImage:
		return domain.ContentTypeImage
	default:
		return domain.ContentTypeText
	}
}

// hasEmoji reports whether the text contains at least one emoji rune.
func hasEmoji(text string) bool {
	for _, r := range text {
		if (r >= 0x1F300 && r <= 0x1FAFF) ||
			(r >= 0x2600 && r <= 0x27BF) ||
			r == 0x2764 {
			return true
		}
	}
	return false
}
