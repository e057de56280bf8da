package temporal

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RE2 has no lookaround and its \b is ASCII only, so boundaries around
// accented words (às, amanhã, sábado) are spelled out.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

func word(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + wordStart + `(?:` + pattern + `)` + wordEnd)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func atWordEnd(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// nextNonSpace returns the first non-space rune of s, lowercased, or 0.
func nextNonSpace(s string) rune {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
	}
	return 0
}

// prevNonSpace returns the last non-space rune of s, lowercased, or 0.
func prevNonSpace(s string) rune {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		i -= size
	}
	return 0
}

// rewriteTokens walks s and, at every word start, tries the ^-anchored re. A match
// that also ends on a word boundary is handed to fn with the text before and after
// it; fn returns the replacement or false to keep the token.
func rewriteTokens(s string, re *regexp.Regexp, fn func(before string, groups []string, after string) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); {
		if atWordStart(s, i) {
			if loc := re.FindStringSubmatchIndex(s[i:]); loc != nil && loc[1] > 0 && atWordEnd(s, i+loc[1]) {
				groups := make([]string, len(loc)/2)
				for g := range groups {
					if loc[2*g] >= 0 {
						groups[g] = s[i+loc[2*g] : i+loc[2*g+1]]
					}
				}
				end := i + loc[1]
				if repl, ok := fn(s[:i], groups, s[end:]); ok {
					b.WriteString(repl)
				} else {
					b.WriteString(groups[0])
				}
				i = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
