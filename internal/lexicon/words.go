package lexicon

// Word sets backing the awareness-stage rule chain. Each set is matched
// at word boundaries over normalized text; the rules care about
// distinct-hit counts, not positions.

// MechanismWords signal that the text describes a named system or method
// rather than just a feeling or a problem.
var MechanismWords = []string{
	"system", "method", "rhythm", "tracker", "framework",
	"routine", "process", "habit", "tool", "app",
}

// ObjectionWords signal objection handling: risk reversal, cancellation,
// commitment softeners.
var ObjectionWords = []string{
	"cancel", "no pressure", "risk-free", "risk free",
	"money back", "money-back", "guarantee",
	"no credit card", "no commitment", "cancel anytime",
}

// FeatureWords signal product-level content: feature walkthroughs and
// demos.
var FeatureWords = []string{
	"feature", "how it works", "demo", "walkthrough",
	"inside the app", "new update", "reminder",
}

// EmotionalWords signal emotional/connection-led content used both by the
// unaware-stage rule and the emotional hook classifier.
var EmotionalWords = []string{
	"feel", "felt", "love", "miss", "missing",
	"lonely", "alone", "happy", "sad", "scared",
	"anxious", "guilty", "proud", "overwhelmed", "grateful",
	"friendship", "connection", "together",
}
