// Package domain defines the core value objects for creative research:
// offers, content records, derived tags and scores, and mined patterns.
package domain

// Funnel stage constants (Schwartz five-stage awareness model).
const (
	StageUnaware       = "unaware"
	StageProblemAware  = "problem_aware"
	StageSolutionAware = "solution_aware"
	StageProductAware  = "product_aware"
	StageMostAware     = "most_aware"
	StageUnclassified  = "unclassified"
)

// FunnelStages lists the five funnel stages in canonical order.
// Iteration over stage-keyed data must use this slice, never map order.
var FunnelStages = []string{
	StageUnaware,
	StageProblemAware,
	StageSolutionAware,
	StageProductAware,
	StageMostAware,
}

// StageHooks holds the per-stage messaging guidance for one offer.
type StageHooks struct {
	Hook    string   `json:"hook"            yaml:"hook"`
	Goal    string   `json:"goal"            yaml:"goal"`
	CTA     string   `json:"cta"             yaml:"cta"`
	Outline []string `json:"outline"         yaml:"outline"`
}

// OfferSpec is the static, declarative description of one market offer.
// It is treated as immutable for the duration of a pipeline run; all list
// fields must be present (possibly empty) so scoring denominators are
// always defined.
type OfferSpec struct {
	Name       string `json:"name"        yaml:"name"`
	Tagline    string `json:"tagline"     yaml:"tagline"`
	LandingURL string `json:"landing_url" yaml:"landing_url"`
	CTAText    string `json:"cta_text"    yaml:"cta_text"`

	ICP             []string `json:"icp"              yaml:"icp"`
	JobsToBeDone    []string `json:"jobs_to_be_done"  yaml:"jobs_to_be_done"`
	Pains           []string `json:"pains"            yaml:"pains"`
	Objections      []string `json:"objections"       yaml:"objections"`
	Transformations []string `json:"transformations"  yaml:"transformations"`
	Mechanism       string   `json:"mechanism"        yaml:"mechanism"`
	Features        []string `json:"features"         yaml:"features"`
	Keywords        []string `json:"keywords"         yaml:"keywords"`

	PreferredFormats []string `json:"preferred_formats" yaml:"preferred_formats"`
	AvoidedFormats   []string `json:"avoided_formats"   yaml:"avoided_formats"`

	// BrandSafety lists forbidden framings; each entry's key phrase is
	// matched as a substring of lowercased record text.
	BrandSafety []string `json:"brand_safety" yaml:"brand_safety"`

	// StageHooks is keyed by one of the five funnel stage constants.
	StageHooks map[string]StageHooks `json:"stage_hooks" yaml:"stage_hooks"`
}

// PrefersVideo reports whether any preferred format mentions video.
func (o *OfferSpec) PrefersVideo() bool {
	return o.prefersFormat("video")
}

// PrefersImage reports whether any preferred format mentions carousel or
// static imagery.
func (o *OfferSpec) PrefersImage() bool {
	return o.prefersFormat("carousel") || o.prefersFormat("image")
}

func (o *OfferSpec) prefersFormat(word string) bool {
	for _, f := range o.PreferredFormats {
		if containsFold(f, word) {
			return true
		}
	}
	return false
}
