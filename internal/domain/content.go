package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Maximum number of text bytes that feed the derived dedupe key. Keeps the
// key stable even when connectors truncate long captions differently.
const dedupeTextPrefixLen = 64

// ContentItem is one externally-sourced record: an organic post or a paid
// ad, already extracted by a connector. Items are read-only once ingested;
// Tags and Scores are always computed fresh from (OfferSpec, ContentItem).
type ContentItem struct {
	Source string `json:"source"`
	ID     string `json:"id,omitempty"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`

	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Views    int `json:"views"`

	HasVideo bool `json:"has_video"`
	HasImage bool `json:"has_image"`

	// URL is the canonical URL of the post or ad, when the connector
	// could resolve one.
	URL string `json:"url,omitempty"`

	// StartedAt is the posted/started-running timestamp. Absent for
	// records whose source exposes none; its absence disables the
	// longevity bonus during scoring.
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// DedupeKey returns the stable identifier used during merge. An explicit
// source-provided ID wins; otherwise the key is derived deterministically
// from author, a text prefix and the timestamp so repeated runs produce
// the same key for the same record.
func (c *ContentItem) DedupeKey() string {
	if c.ID != "" {
		return c.ID
	}
	text := c.Text
	if len(text) > dedupeTextPrefixLen {
		text = text[:dedupeTextPrefixLen]
	}
	ts := ""
	if c.StartedAt != nil {
		ts = c.StartedAt.UTC().Format(time.RFC3339)
	}
	sum := sha256.Sum256([]byte(c.Author + "|" + text + "|" + ts))
	return hex.EncodeToString(sum[:8])
}

// HasEngagement reports whether any engagement counter is non-zero.
func (c *ContentItem) HasEngagement() bool {
	return c.Likes > 0 || c.Comments > 0 || c.Shares > 0 || c.Views > 0
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
