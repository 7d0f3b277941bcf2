package domain

// SourceKind classifies a connector by the reliability of its engagement
// data.
type SourceKind string

// Source kind constants.
const (
	// SourceOrganicPrimary is a first-party organic source whose
	// engagement counters come straight from the platform.
	SourceOrganicPrimary SourceKind = "organic_primary"
	// SourceOrganicSecondary is an organic source scraped through an
	// aggregator or search layer.
	SourceOrganicSecondary SourceKind = "organic_secondary"
	// SourceAdLibrary is a paid-ad transparency library; these records
	// usually lack engagement counters entirely.
	SourceAdLibrary SourceKind = "ad_library"
)

// sourceKinds maps known source tags to their kind. Connectors register
// new tags here; unknown tags fall back to organic_secondary.
var sourceKinds = map[string]SourceKind{
	"tiktok":       SourceOrganicPrimary,
	"instagram":    SourceOrganicPrimary,
	"facebook":     SourceOrganicPrimary,
	"youtube":      SourceOrganicSecondary,
	"reddit":       SourceOrganicSecondary,
	"x":            SourceOrganicSecondary,
	"meta_ads":     SourceAdLibrary,
	"tiktok_ads":   SourceAdLibrary,
	"google_ads":   SourceAdLibrary,
	"linkedin_ads": SourceAdLibrary,
}

// SourceKindOf returns the kind for a source tag, defaulting to
// organic_secondary for tags with no registration.
func SourceKindOf(tag string) SourceKind {
	if kind, ok := sourceKinds[tag]; ok {
		return kind
	}
	return SourceOrganicSecondary
}
