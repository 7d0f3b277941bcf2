package domain

// Hook type constants. Classification is first-match-wins over an ordered
// rule chain; see the tagger package for rule ordering.
const (
	HookQuestion      = "question"
	HookPersonalStory = "personal_story"
	HookStatNumber    = "stat_number"
	HookContrast      = "contrast"
	HookCuriosity     = "curiosity"
	HookCommand       = "command"
	HookSocialProof   = "social_proof"
	HookEmotional     = "emotional"
	HookStatement     = "statement"
	HookUnknown       = "unknown"
)

// Call-to-action type constants, in evaluation priority order.
const (
	CTADownload  = "download"
	CTATrial     = "trial"
	CTALinkBio   = "link_bio"
	CTAComment   = "comment"
	CTASaveShare = "save_share"
	CTAFollow    = "follow"
	CTALearnMore = "learn_more"
	CTASignUp    = "sign_up"
	CTANone      = "none"
)

// Content type constants.
const (
	ContentTypeVideo = "video"
	ContentTypeImage = "image"
	ContentTypeText  = "text"
)

// Tags holds the per-item classification derived by the tagger. A Tags
// value is reproducible purely from (OfferSpec, ContentItem).
type Tags struct {
	HookType       string   `json:"hook_type"`
	HookLine       string   `json:"hook_line"`
	AwarenessStage string   `json:"awareness_stage"`
	PainPoints     []string `json:"pain_points"`
	CTAType        string   `json:"cta_type"`
	ContentType    string   `json:"content_type"`
	WordCount      int      `json:"word_count"`
	HasEmoji       bool     `json:"has_emoji"`
	FitScore       float64  `json:"fit_score"`
}
