package tagger

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/lexicon"
)

// hookLineMaxLen caps the stored hook line length in runes.
const hookLineMaxLen = 120

// hookRule is one (label, predicate) pair in the hook classification
// chain. Rules are evaluated in order, first match wins, so the chain
// ordering is auditable and each rule unit-testable in isolation.
type hookRule struct {
	label string
	match func(line string) bool
}

var interrogatives = []string{
	"what", "why", "how", "when", "where", "who", "which",
}

var firstPersonWords = []string{
	"i", "i'm", "i've", "i'd", "my", "we", "our", "me",
}

var contrastStarts = []string{
	"stop", "don't", "dont", "never", "quit", "avoid", "no more",
}

var commandStarts = []string{
	"do this", "try this", "try", "use", "start",
	"take", "watch", "remember", "imagine", "save",
}

var curiosityPhrases = []string{
	"secret", "truth", "nobody", "no one", "most people",
	"what they don't", "hidden",
}

// statPattern matches a number followed by %, "x", or a time unit.
var statPattern = regexp.MustCompile(
	`\d+(?:\.\d+)?\s*(?:%|x\b|percent\b|sec(?:ond)?s?\b|min(?:ute)?s?\b|hours?\b|days?\b|weeks?\b|months?\b|years?\b)`)

// bigNumberPattern matches large-number shorthand and words.
var bigNumberPattern = regexp.MustCompile(`\d+\s*(?:k|m)\b|million|billion|thousand`)

// socialProofPattern matches "N+ people/users/clients"-style claims.
var socialProofPattern = regexp.MustCompile(
	`\d[\d,]*\s*\+?\s*(?:people|users|clients|customers|members)\b|join \d`)

// hookRules is the ordered hook classification chain. Priority is part of
// the contract: a line both asking a question and quoting a stat is a
// question hook.
var hookRules = []hookRule{
	{domain.HookQuestion, func(line string) bool {
		return startsWithAny(line, interrogatives) || strings.HasSuffix(strings.TrimSpace(line), "?")
	}},
	{domain.HookPersonalStory, func(line string) bool {
		return startsWithAny(line, firstPersonWords)
	}},
	{domain.HookStatNumber, func(line string) bool {
		return statPattern.MatchString(line) || bigNumberPattern.MatchString(line)
	}},
	{domain.HookContrast, func(line string) bool {
		return startsWithAnyPhrase(line, contrastStarts)
	}},
	{domain.HookCuriosity, func(line string) bool {
		return containsAny(line, curiosityPhrases)
	}},
	{domain.HookCommand, func(line string) bool {
		return startsWithAnyPhrase(line, commandStarts)
	}},
	{domain.HookSocialProof, func(line string) bool {
		return socialProofPattern.MatchString(line)
	}},
	{domain.HookEmotional, func(line string) bool {
		return containsAny(line, lexicon.EmotionalWords)
	}},
}

// classifyHook runs the hook rule chain over the first line of a record.
func classifyHook(line string) string {
	if strings.TrimSpace(line) == "" {
		return domain.HookUnknown
	}
	normalized := lexicon.Normalize(line)
	for _, rule := range hookRules {
		if rule.match(normalized) {
			return rule.label
		}
	}
	return domain.HookStatement
}

// hookLine extracts the first non-empty line of text, truncated.
func hookLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > hookLineMaxLen {
			return string(runes[:hookLineMaxLen])
		}
		return line
	}
	return ""
}

// startsWithAny reports whether the first word of line equals any of the
// given words.
func startsWithAny(line string, words []string) bool {
	first := firstWord(line)
	for _, w := range words {
		if first == w {
			return true
		}
	}
	return false
}

// startsWithAnyPhrase reports whether line begins with any of the given
// phrases at a word boundary.
func startsWithAnyPhrase(line string, phrases []string) bool {
	for _, p := range phrases {
		if line == p || strings.HasPrefix(line, p+" ") || strings.HasPrefix(line, p+",") {
			return true
		}
	}
	return false
}

func containsAny(line string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,!?:;\"'")
}
