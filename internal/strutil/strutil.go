// Package strutil provides the low-level text utilities make semantics are
// built from: whitespace-delimited word scanning and joining, trimming and
// line splitting that honor backslash continuations, and directory/file
// name extraction over path tokens.
package strutil

import "strings"

// isSpace matches make's whitespace set: \t \n \v \f \r and space.
func isSpace(c byte) bool {
	return ('\t' <= c && c <= '\r') || c == ' '
}

// Words splits s into its whitespace-delimited tokens. No quoting
// semantics apply; empty input yields no tokens.
func Words(s string) []string {
	var toks []string
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		if i > start {
			toks = append(toks, s[start:i])
		}
	}
	return toks
}

// WordWriter joins words with single spaces as they are appended to a
// builder. The first word gets no leading separator, even when the
// builder already holds text.
type WordWriter struct {
	out        *strings.Builder
	needsSpace bool
}

// NewWordWriter returns a WordWriter appending to out.
func NewWordWriter(out *strings.Builder) *WordWriter {
	return &WordWriter{out: out}
}

// Write appends one word, preceded by a space for every word but the first.
func (w *WordWriter) Write(tok string) {
	if w.needsSpace {
		w.out.WriteByte(' ')
	} else {
		w.needsSpace = true
	}
	w.out.WriteString(tok)
}

// TrimLeftSpace returns s without leading whitespace. Backslash-newline
// pairs count as whitespace so that trimming never splits a continuation.
func TrimLeftSpace(s string) string {
	i := 0
	for i < len(s) {
		if isSpace(s[i]) {
			i++
			continue
		}
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\r' || s[i+1] == '\n') {
			i += 2
			continue
		}
		break
	}
	return s[i:]
}

// Dirname returns the directory part of a path token: everything before
// the last slash. A token with no slash maps to "." and a token whose
// only slash is leading maps to "".
func Dirname(s string) string {
	found := strings.LastIndexByte(s, '/')
	switch found {
	case -1:
		return "."
	case 0:
		return ""
	}
	return s[:found]
}

// Basename returns the file name part of a path token: everything after
// the last slash. Bare file names and root-level paths map to themselves.
func Basename(s string) string {
	found := strings.LastIndexByte(s, '/')
	if found <= 0 {
		return s
	}
	return s[found+1:]
}

// FindEndOfLine returns the index in s of the first line terminator not
// escaped by a backslash. Escaped terminators ("\<newline>" and
// "\<cr><newline>") and escaped backslashes are stepped over. When no
// terminator remains the returned index equals len(s).
func FindEndOfLine(s string) int {
	e := 0
	for e < len(s) {
		i := strings.IndexAny(s[e:], "\n\\")
		if i < 0 {
			return len(s)
		}
		e += i
		if s[e] == '\n' {
			return e
		}
		switch {
		case e+1 < len(s) && s[e+1] == '\n':
			e += 2
		case e+2 < len(s) && s[e+1] == '\r' && s[e+2] == '\n':
			e += 3
		case e+1 < len(s) && s[e+1] == '\\':
			e += 2
		default:
			e++
		}
	}
	return e
}
