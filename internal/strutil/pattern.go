package strutil

import "strings"

// Pattern matches names against a make pattern containing at most one '%'
// wildcard and substitutes matched stems back into replacement text. A
// pattern without '%' only ever matches itself.
type Pattern struct {
	pat     string
	percent int // index of '%', or -1 for a literal pattern
}

// NewPattern compiles pat. Only the first '%' is a wildcard; any further
// '%' characters are literal.
func NewPattern(pat string) Pattern {
	return Pattern{pat: pat, percent: strings.IndexByte(pat, '%')}
}

// Match reports whether s matches the pattern.
func (p Pattern) Match(s string) bool {
	if p.percent < 0 {
		return s == p.pat
	}
	return p.matchWildcard(s)
}

func (p Pattern) matchWildcard(s string) bool {
	return len(s) >= len(p.pat)-1 &&
		strings.HasPrefix(s, p.pat[:p.percent]) &&
		strings.HasSuffix(s, p.pat[p.percent+1:])
}

// Stem returns the substring of s matched by '%', or "" when s does not
// match the pattern.
func (p Pattern) Stem(s string) string {
	if p.percent < 0 || !p.matchWildcard(s) {
		return ""
	}
	return p.stem(s)
}

func (p Pattern) stem(s string) string {
	return s[p.percent : len(s)-(len(p.pat)-p.percent-1)]
}

// Subst rewrites s through the pattern: when s matches, every '%' in
// subst is replaced by the matched stem. A literal pattern substitutes
// only on an exact match. Non-matching names pass through unchanged.
func (p Pattern) Subst(s, subst string) string {
	if p.percent < 0 {
		if s == p.pat {
			return subst
		}
		return s
	}
	if !p.matchWildcard(s) {
		return s
	}
	return strings.ReplaceAll(subst, "%", p.stem(s))
}
