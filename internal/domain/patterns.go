package domain

// FrequencyEntry is one row of an ordered frequency table: label plus
// occurrence count. Tables are ordered count-descending with ties broken
// by first-seen order, so top-K output is deterministic.
type FrequencyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PatternSummary aggregates reusable creative primitives mined from the
// top-N slice of a ranked collection.
type PatternSummary struct {
	SampleSize int `json:"sample_size"`

	// HookLines is the deduplicated list of opening lines from the top
	// slice, short lines skipped.
	HookLines []string `json:"hook_lines"`

	HookTypes       []FrequencyEntry `json:"hook_types"`
	AwarenessStages []FrequencyEntry `json:"awareness_stages"`
	PainPoints      []FrequencyEntry `json:"pain_points"`
	CTATypes        []FrequencyEntry `json:"cta_types"`
	ContentTypes    []FrequencyEntry `json:"content_types"`
	TopAuthors      []FrequencyEntry `json:"top_authors"`

	MeanWordCount float64 `json:"mean_word_count"`

	// ScrollStoppers lists hook lines whose records showed real offer
	// fit; candidates for direct swipe-file use.
	ScrollStoppers []string `json:"scroll_stoppers"`

	// ProofStyles counts non-exclusive proof-style categories; a record
	// may contribute to several.
	ProofStyles []FrequencyEntry `json:"proof_styles"`

	// StageHookLines groups representative hook lines by awareness
	// stage, feeding the per-stage briefs.
	StageHookLines map[string][]string `json:"stage_hook_lines"`
}

// StageBrief is the per-funnel-stage output object: the offer's own
// messaging for the stage joined with competitor evidence from the mined
// summary. Rendering briefs into reports is external to this module.
type StageBrief struct {
	Stage             string   `json:"stage"`
	Hook              string   `json:"hook"`
	Goal              string   `json:"goal"`
	RecommendedCTA    string   `json:"recommended_cta"`
	RecommendedFormat string   `json:"recommended_format"`
	CompetitorHooks   []string `json:"competitor_hooks"`
	Outline           []string `json:"outline,omitempty"`
}
