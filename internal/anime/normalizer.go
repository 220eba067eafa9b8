package anime

import (
	"regexp"
	"strings"
)

// Ordered passes over the lowercased title. Compiled once; NormalizeTitle
// applies them top to bottom, so marker order matters (type markers must go
// before the trailing-year strip, roman numerals last). Type markers are
// only stripped at the end of the title: a series named "Movie Club" or
// "Special A" keeps its name.
var (
	seasonRe  = regexp.MustCompile(`\s(season\s?\d+|s\d+)\b`)
	partRe    = regexp.MustCompile(`\s(part\s?\d+|p\d+)\b`)
	courRe    = regexp.MustCompile(`\scour\s?\d+\b`)
	typeRe    = regexp.MustCompile(`\s?:?\s?\b(the movie|movie|ova|ona|tv special|special)$`)
	yearRe    = regexp.MustCompile(`\s\(\d{4}\)$`)
	tvRe      = regexp.MustCompile(`\s\(tv\)$`)
	ordinalRe = regexp.MustCompile(`\s(2nd|3rd|4th|5th) season`)
	romanRe   = regexp.MustCompile(`\s[ivx]+$`)

	separators = strings.NewReplacer(":", " ", "-", " ")
)

// NormalizeTitle reduces a raw anime title to the canonical key used to
// merge seasons, parts and specials of the same series. It is a best-effort
// lexical heuristic: unrelated titles that strip to the same string are
// merged, renamed sequels are not. Callers must skip entries whose key
// comes back empty.
func NormalizeTitle(raw string) string {
	text := strings.ToLower(raw)

	text = seasonRe.ReplaceAllString(text, "")
	text = partRe.ReplaceAllString(text, "")
	text = courRe.ReplaceAllString(text, "")
	text = typeRe.ReplaceAllString(text, "")
	text = yearRe.ReplaceAllString(text, "")
	text = tvRe.ReplaceAllString(text, "")
	text = ordinalRe.ReplaceAllString(text, "")
	text = romanRe.ReplaceAllString(text, "")

	text = separators.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
