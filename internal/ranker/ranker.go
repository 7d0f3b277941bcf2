// Package ranker scores a tagged content record against an OfferSpec on
// five independent objectives and produces an explainable total with a
// reuse recommendation.
package ranker

import (
	"math"
	"strings"
	"time"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// Logger defines the logging interface used by the ranker.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Weights holds the objective weights for the total score. Risk carries a
// negative weight so high-risk records rank down.
type Weights struct {
	Fit           float64 `yaml:"fit"`
	Performance   float64 `yaml:"performance"`
	Format        float64 `yaml:"format"`
	Repeatability float64 `yaml:"repeatability"`
	Risk          float64 `yaml:"risk"`
}

// DefaultWeights returns the standard objective weights.
func DefaultWeights() Weights {
	return Weights{
		Fit:           0.35,
		Performance:   0.25,
		Format:        0.15,
		Repeatability: 0.15,
		Risk:          -0.10,
	}
}

// Config holds engine configuration.
type Config struct {
	Weights Weights
	// ReferenceTime anchors the longevity bonus so that scoring the
	// same input twice is byte-identical. Zero means time.Now at
	// construction.
	ReferenceTime time.Time
}

// Engine scores tagged records against one offer.
type Engine struct {
	offer       *domain.OfferSpec
	weights     Weights
	now         time.Time
	brandSafety *lexicon.Matcher
	logger      Logger
}

// New creates an engine with default weights.
func New(offer *domain.OfferSpec, logger Logger) *Engine {
	return NewWithConfig(offer, Config{Weights: DefaultWeights()}, logger)
}

// NewWithConfig creates an engine with custom weights and reference time.
func NewWithConfig(offer *domain.OfferSpec, cfg Config, logger Logger) *Engine {
	now := cfg.ReferenceTime
	if now.IsZero() {
		now = time.Now().UTC()
	}
	categories := make([]lexicon.Category, 0, len(offer.BrandSafety))
	for _, rule := range offer.BrandSafety {
		categories = append(categories, lexicon.Category{Label: rule, Triggers: []string{rule}})
	}
	return &Engine{
		offer:       offer,
		weights:     cfg.Weights,
		now:         now,
		brandSafety: lexicon.NewMatcher(categories),
		logger:      logger,
	}
}

// Engagement tier thresholds and scores.
const (
	engViralThreshold  = 10000
	engStrongThreshold = 1000
	engSolidThreshold  = 100
	engViralScore      = 1.0
	engStrongScore     = 0.7
	engSolidScore      = 0.4
	engAnyScore        = 0.2

	commentEngWeight = 2
	shareEngWeight   = 3
)

// Longevity tiers for ad-library records lacking engagement counters.
const (
	longevityLongDays   = 90
	longevityMediumDays = 30
	longevityShortDays  = 7
	longevityLongScore  = 0.3
	longevityMedScore   = 0.2
	longevityShortScore = 0.1
)

// Format component scores.
const (
	formatBase       = 0.3
	formatVideoBonus = 0.4
	formatImageBonus = 0.3
	formatWordBonus  = 0.1
	formatEmojiBonus = 0.1
	formatMinWords   = 20
)

// Repeatability component scores.
const (
	repeatBase       = 0.3
	repeatStrongHook = 0.3
	repeatSoftHook   = 0.2
	repeatMidLength  = 0.2
	repeatLongLength = 0.1
	repeatCTABonus   = 0.2
	repeatMinWords   = 20
	repeatMaxWords   = 200
)

// Risk component scores.
const (
	riskBrandRulePenalty = 0.3
	riskSelfBrandPenalty = 0.2
	riskWarnThreshold    = 0.3
	riskRejectThreshold  = 0.5
)

// Reuse decision thresholds.
const (
	reuseCloneMinFit        = 0.15
	reuseCloneMinRepeat     = 0.5
	reuseRemixMinFit        = 0.05
	reuseRemixMinRepeat     = 0.3
	reuseSelfBrandMaxRepeat = 0.4
)

// Score computes the five component scores, total, confidence, reuse
// style and rationale for one tagged record.
func (e *Engine) Score(item *domain.ContentItem, tags *domain.Tags) (*domain.Scores, error) {
	s := &domain.Scores{
		Fit:           clamp01(tags.FitScore),
		Performance:   e.performanceScore(item),
		Format:        e.formatScore(tags),
		Repeatability: e.repeatabilityScore(tags),
		Risk:          e.riskScore(item),
	}

	total := e.weights.Fit*s.Fit +
		e.weights.Performance*s.Performance +
		e.weights.Format*s.Format +
		e.weights.Repeatability*s.Repeatability +
		e.weights.Risk*s.Risk
	s.Total = math.Max(0, total)

	s.Confidence = e.confidenceScore(item, tags)
	s.ReuseStyle = e.reuseStyle(item, s)
	s.WhyItRanked = e.buildRationale(item, tags, s)

	e.logger.Debug("record scored",
		"item_id", item.DedupeKey(),
		"total", s.Total,
		"confidence", s.Confidence,
		"reuse_style", s.ReuseStyle,
	)
	return s, nil
}

// performanceScore tiers raw engagement; records without engagement data
// (typically ad-library records) fall back to a longevity bonus.
func (e *Engine) performanceScore(item *domain.ContentItem) float64 {
	eng := item.Likes + item.Comments*commentEngWeight + item.Shares*shareEngWeight
	switch {
	case eng > engViralThreshold:
		return engViralScore
	case eng > engStrongThreshold:
		return engStrongScore
	case eng > engSolidThreshold:
		return engSolidScore
	case eng > 0:
		return engAnyScore
	}

	if item.StartedAt == nil {
		return 0
	}
	days := e.now.Sub(item.StartedAt.UTC()).Hours() / 24
	switch {
	case days > longevityLongDays:
		return clamp01(longevityLongScore)
	case days > longevityMediumDays:
		return clamp01(longevityMedScore)
	case days > longevityShortDays:
		return clamp01(longevityShortScore)
	default:
		return 0
	}
}

// formatScore rewards records whose format matches the offer's preferred
// formats plus basic substance signals.
func (e *Engine) formatScore(tags *domain.Tags) float64 {
	score := formatBase
	if tags.ContentType == domain.ContentTypeVideo && e.offer.PrefersVideo() {
		score += formatVideoBonus
	}
	if tags.ContentType == domain.ContentTypeImage && e.offer.PrefersImage() {
		score += formatImageBonus
	}
	if tags.WordCount > formatMinWords {
		score += formatWordBonus
	}
	if tags.HasEmoji {
		score += formatEmojiBonus
	}
	return clamp01(score)
}

// repeatabilityScore estimates how readily the record's structure can be
// reused for a different offer.
func (e *Engine) repeatabilityScore(tags *domain.Tags) float64 {
	score := repeatBase
	switch tags.HookType {
	case domain.HookQuestion, domain.HookPersonalStory, domain.HookContrast, domain.HookCommand:
		score += repeatStrongHook
	case domain.HookEmotional, domain.HookCuriosity:
		score += repeatSoftHook
	}
	if tags.WordCount > repeatMinWords && tags.WordCount < repeatMaxWords {
		score += repeatMidLength
	} else if tags.WordCount >= repeatMaxWords {
		score += repeatLongLength
	}
	if tags.CTAType != domain.CTANone {
		score += repeatCTABonus
	}
	return clamp01(score)
}

// riskScore accumulates brand-safety violations plus a self-promotional
// branding penalty: a record quoting its own advertiser name is harder to
// repurpose without attribution.
func (e *Engine) riskScore(item *domain.ContentItem) float64 {
	score := 0.0
	score += float64(len(e.brandSafety.Labels(item.Text))) * riskBrandRulePenalty
	if authorInText(item) {
		score += riskSelfBrandPenalty
	}
	return clamp01(score)
}

// reuseStyle applies the reuse decision chain top-down, first match wins.
func (e *Engine) reuseStyle(item *domain.ContentItem, s *domain.Scores) string {
	switch {
	case s.Risk > riskRejectThreshold,
		authorInText(item) && s.Repeatability < reuseSelfBrandMaxRepeat:
		return domain.ReuseNotRecommended
	case s.Fit > reuseCloneMinFit && s.Repeatability > reuseCloneMinRepeat:
		return domain.ReuseAngleClone
	case (s.Fit > reuseRemixMinFit && s.Repeatability > reuseRemixMinRepeat) ||
		s.Repeatability > reuseCloneMinRepeat:
		return domain.ReuseStructureRemix
	default:
		return domain.ReuseReferenceOnly
	}
}

// authorInText reports whether the record's own author/advertiser name
// appears inside its own copy.
func authorInText(item *domain.ContentItem) bool {
	if item.Author == "" || item.Text == "" {
		return false
	}
	return strings.Contains(lexicon.Normalize(item.Text), lexicon.Normalize(item.Author))
}

func clamp01(f float64) float64 {
	return math.Min(1, math.Max(0, f))
}
