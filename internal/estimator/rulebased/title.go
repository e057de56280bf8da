package rulebased

import (
	"regexp"
	"strings"

	"brme/internal/temporal"
)

const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

var (
	fillerRe = regexp.MustCompile(`(?i)` + wordStart + `(?:` +
		`hoje|amanh[aã]|dia|às|as|a|` +
		`\d{1,2}\s*h|\d{1,2}\s*:\s*\d{2}|\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?|` +
		`(?:seg(?:unda)?|ter[cç]a|quar(?:ta)?|quin(?:ta)?|sex(?:ta)?|s[aá]b(?:ado)?|dom(?:ingo)?)(?:-?feira)?` +
		`)` + wordEnd)
	spacesRe = regexp.MustCompile(`\s+`)
)

// CleanTitle strips the date and time wording from text: clock ranges, the span
// the parser recognized, hoje/amanhã/dia, clock and date tokens, weekday names
// and the prepositions a/as/às.
func CleanTitle(text, matched string) string {
	t := rangeRe.ReplaceAllString(text, " ")
	if matched != "" {
		t = strings.Replace(t, matched, " ", 1)
	}

	// Matches consume their surrounding separators, so adjacent fillers need more passes.
	for {
		next := fillerRe.ReplaceAllString(" "+t+" ", " ")
		if strings.TrimSpace(next) == strings.TrimSpace(t) {
			break
		}
		t = next
	}

	t = strings.TrimSpace(spacesRe.ReplaceAllString(t, " "))
	if t == "" {
		return temporal.DefaultTitle
	}
	return t
}
