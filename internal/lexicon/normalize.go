// Package lexicon provides ordered keyword lexicons and an Aho-Corasick
// backed matcher used by the tagger, ranker and miner.
package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so "café" matches "cafe".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and folds diacritics. All matching in this
// package operates on normalized text; callers must normalize both the
// lexicon entries and the candidate text with the same function.
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Fall back to plain lowercasing on malformed input; a
		// matching miss is preferable to aborting the record.
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
