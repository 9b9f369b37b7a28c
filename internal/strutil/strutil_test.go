package strutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only spaces", " \t\n ", nil},
		{"single word", "foo", []string{"foo"}},
		{"multiple words", "a.o b.o  c.o", []string{"a.o", "b.o", "c.o"}},
		{"leading and trailing space", "  x y\t", []string{"x", "y"}},
		{"all whitespace kinds", "a\tb\nc\vd\fe\rf g", []string{"a", "b", "c", "d", "e", "f", "g"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestWordWriter(t *testing.T) {
	t.Run("joins with single spaces", func(t *testing.T) {
		var sb strings.Builder
		ww := NewWordWriter(&sb)
		ww.Write("a")
		ww.Write("b")
		ww.Write("c")
		assert.Equal(t, "a b c", sb.String())
	})

	t.Run("no separator before the first word", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("prefix:")
		ww := NewWordWriter(&sb)
		ww.Write("a")
		assert.Equal(t, "prefix:a", sb.String())
	})
}

func TestTrimLeftSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no leading space", "echo hi", "echo hi"},
		{"spaces and tabs", " \t echo", "echo"},
		{"backslash newline counts as space", "\\\n\techo", "echo"},
		{"backslash cr counts as space", "\\\r\necho", "echo"},
		{"lone backslash stops trimming", "\\echo", "\\echo"},
		{"trailing space kept", "echo ", "echo "},
		{"all space", "  \t", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimLeftSpace(tt.in))
		})
	}
}

func TestDirname(t *testing.T) {
	assert.Equal(t, "a", Dirname("a/b.o"))
	assert.Equal(t, "a/b", Dirname("a/b/c.o"))
	assert.Equal(t, ".", Dirname("c.o"))
	assert.Equal(t, "", Dirname("/c.o"))
}

func TestBasename(t *testing.T) {
	assert.Equal(t, "b.o", Basename("a/b.o"))
	assert.Equal(t, "c.o", Basename("c.o"))
	assert.Equal(t, "/c.o", Basename("/c.o"))
	assert.Equal(t, "c.o", Basename("a/b/c.o"))
}

func TestFindEndOfLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"no terminator", "echo hi", 7},
		{"plain newline", "echo\nhi", 4},
		{"escaped newline is a continuation", "echo \\\nhi", 9},
		{"escaped crlf is a continuation", "echo \\\r\nhi", 10},
		{"escaped backslash then newline", "echo \\\\\nx", 7},
		{"continuation then real newline", "a \\\nb\nc", 5},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindEndOfLine(tt.in))
		})
	}
}
