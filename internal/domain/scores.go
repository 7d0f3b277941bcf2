package domain

// Reuse style constants. The decision chain in the ranker evaluates these
// top-down, first match wins.
const (
	ReuseAngleClone     = "angle_clone"
	ReuseStructureRemix = "structure_remix"
	ReuseReferenceOnly  = "reference_only"
	ReuseNotRecommended = "not_recommended"
)

// Scores holds the per-item ranking output. The five component scores are
// clamped into [0,1]; Total is floor-clamped at 0 with no upper bound;
// Confidence is clamped into [0,1] and rounded to 2 decimals.
type Scores struct {
	Fit           float64 `json:"fit"`
	Performance   float64 `json:"performance"`
	Format        float64 `json:"format"`
	Repeatability float64 `json:"repeatability"`
	Risk          float64 `json:"risk"`

	Total      float64 `json:"total"`
	Confidence float64 `json:"confidence"`
	ReuseStyle string  `json:"reuse_style"`

	// WhyItRanked is a short human-readable rationale, at most five
	// reason fragments joined with " + ".
	WhyItRanked string `json:"why_it_ranked"`
}

// RankedItem pairs a content record with its derived tags and scores.
type RankedItem struct {
	Item   ContentItem `json:"item"`
	Tags   Tags        `json:"tags"`
	Scores Scores      `json:"scores"`
}
