package tagger

import (
	"strings"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// ctaPattern is one labelled group of call-to-action phrases. Patterns
// are evaluated in declaration order, first match wins; the explicit
// slice keeps the priority auditable instead of relying on map iteration.
type ctaPattern struct {
	label   string
	phrases []string
}

var ctaPatterns = []ctaPattern{
	{domain.CTADownload, []string{
		"download", "get the app", "app store", "google play", "install",
	}},
	{domain.CTATrial, []string{
		"free trial", "try it free", "try for free", "start your trial", "days free",
	}},
	{domain.CTALinkBio, []string{
		"link in bio", "link in my bio", "link in our bio",
	}},
	{domain.CTAComment, []string{
		"comment below", "drop a comment", "tell me in the comments",
		"let me know in the comments", "comment \"",
	}},
	{domain.CTASaveShare, []string{
		"save this", "share this", "send this to", "tag someone", "tag a friend",
	}},
	{domain.CTAFollow, []string{
		"follow for", "follow me", "follow us", "follow along",
	}},
	{domain.CTALearnMore, []string{
		"learn more", "find out more", "read more", "see how",
	}},
	{domain.CTASignUp, []string{
		"sign up", "signup", "join the waitlist", "get started", "subscribe", "join now",
	}},
}

// classifyCTA runs the ordered CTA pattern chain over the full text.
func classifyCTA(text string) string {
	if strings.TrimSpace(text) == "" {
		return domain.CTANone
	}
	normalized := lexicon.Normalize(text)
	for _, pattern := range ctaPatterns {
		for _, phrase := range pattern.phrases {
			if strings.Contains(normalized, phrase) {
				return pattern.label
			}
		}
	}
	return domain.CTANone
}
