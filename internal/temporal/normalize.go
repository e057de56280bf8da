package temporal

import (
	"regexp"
	"strconv"
)

var (
	hourSuffixRe  = regexp.MustCompile(`(?i)^(\d{1,2})\s*hrs?`)
	hourMinuteRe  = regexp.MustCompile(`(?i)^(\d{1,2})\s*h\s*(\d{2})`)
	prepositionRe = regexp.MustCompile(`(?i)^(às|as)\s*(\d{1,2})`)
	bareNumberRe  = regexp.MustCompile(`^(\d{1,2})`)

	dateKeywordRe = word(`hoje|amanh[aã]|segunda|ter[cç]a|quarta|quinta|sexta|s[aá]bado|domingo|dia`)
)

// Normalize rewrites colloquial Portuguese clock expressions into the forms the
// cue extractors and estimators understand:
//
//	17hrs, 17 hr   -> 17h
//	17h30, 17h 30  -> 17:30
//	às 17          -> às 17h
//	hoje 17        -> hoje 17h (only when a date keyword is present)
//
// The rules are reapplied until the text stops changing, so Normalize is idempotent.
func Normalize(text string) string {
	// A number gains an h at most once and each h turns into ":" at most once, so
	// 2*len+2 passes always reach the fixed point.
	out := text
	for range 2*len(text) + 2 {
		next := normalizePass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func normalizePass(t string) string {
	t = rewriteTokens(t, hourSuffixRe, func(_ string, g []string, _ string) (string, bool) {
		return g[1] + "h", true
	})

	t = rewriteTokens(t, hourMinuteRe, func(_ string, g []string, _ string) (string, bool) {
		return g[1] + ":" + g[2], true
	})

	t = rewriteTokens(t, prepositionRe, func(_ string, g []string, after string) (string, bool) {
		if r := nextNonSpace(after); r == ':' || r == 'h' {
			return "", false
		}
		return g[1] + " " + g[2] + "h", true
	})

	if !dateKeywordRe.MatchString(t) {
		return t
	}

	// A bare number in a sentence that already names a day is read as an hour.
	return rewriteTokens(t, bareNumberRe, func(before string, g []string, after string) (string, bool) {
		if clockAdjacent(prevNonSpace(before)) || clockAdjacent(nextNonSpace(after)) {
			return "", false
		}
		n, err := strconv.Atoi(g[1])
		if err != nil || n > 23 {
			return "", false
		}
		return g[1] + "h", true
	})
}

func clockAdjacent(r rune) bool {
	switch r {
	case ':', 'h', '/', '-':
		return true
	}
	return false
}
