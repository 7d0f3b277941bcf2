package miner

import (
	"regexp"

	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// Proof-style labels.
const (
	ProofScreenDemo   = "screen_demo"
	ProofTestimonial  = "testimonial"
	ProofNumericProof = "numeric_proof"
	ProofBeforeAfter  = "before_after"
	ProofTutorial     = "tutorial"
)

// proofRule tests one proof-style category against record text. The
// categories are non-exclusive: one record may match several.
type proofRule struct {
	label    string
	patterns []*regexp.Regexp
}

var proofRules = []proofRule{
	{
		label: ProofScreenDemo,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bscreen\s*(record|recording|share)\b`),
			regexp.MustCompile(`(?i)\b(watch|see)\s+(me|how)\b`),
			regexp.MustCompile(`(?i)\b(demo|walkthrough|showing\s+you)\b`),
			regexp.MustCompile(`(?i)\bin\s+real\s+time\b`),
		},
	},
	{
		label: ProofTestimonial,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(changed\s+my\s+life|game\s*changer)\b`),
			regexp.MustCompile(`(?i)\bi\s+(was\s+skeptical|never\s+thought)\b`),
			regexp.MustCompile(`(?i)\b(honest\s+)?review\b`),
			regexp.MustCompile(`(?i)\b(thank\s+you|grateful|can'?t\s+recommend)\b`),
		},
	},
	{
		label: ProofNumericProof,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d[\d,.]*\s*(people|users|customers|clients|members|downloads)\b`),
			regexp.MustCompile(`(?i)\b\d[\d,.]*\s*%`),
			regexp.MustCompile(`(?i)\b\d[\d,.]*\s*(stars?|reviews?|ratings?)\b`),
		},
	},
	{
		label: ProofBeforeAfter,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bbefore\s+(and|vs\.?|&)\s+after\b`),
			regexp.MustCompile(`(?i)\bi\s+used\s+to\b`),
			regexp.MustCompile(`(?i)\b(then\s+i\s+(found|tried|started)|until\s+i)\b`),
			regexp.MustCompile(`(?i)\b(transformation|glow\s*up)\b`),
		},
	},
	{
		label: ProofTutorial,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(how\s+to|step\s*(-|\s)*by\s*(-|\s)*step)\b`),
			regexp.MustCompile(`(?i)\bstep\s+\d`),
			regexp.MustCompile(`(?i)\b(tutorial|guide|here'?s\s+how)\b`),
			regexp.MustCompile(`(?i)\b(first,|second,|finally,)`),
		},
	},
}

// proofStyles returns every proof-style label whose patterns match the
// text, in rule declaration order.
func proofStyles(text string) []string {
	if text == "" {
		return nil
	}
	normalized := lexicon.Normalize(text)

	var labels []string
	for _, rule := range proofRules {
		for _, p := range rule.patterns {
			if p.MatchString(normalized) {
				labels = append(labels, rule.label)
				break
			}
		}
	}
	return labels
}
