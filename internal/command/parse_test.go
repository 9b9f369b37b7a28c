package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandPrefixes(t *testing.T) {
	tests := []struct {
		name            string
		in              string
		wantText        string
		wantEcho        bool
		wantIgnoreError bool
	}{
		{"no modifiers", "echo hi", "echo hi", true, false},
		{"at disables echo", "@echo hi", "echo hi", false, false},
		{"dash ignores errors", "-rm -f out", "rm -f out", true, true},
		{"stacked modifiers", "@-echo hi", "echo hi", false, true},
		{"space between modifiers", "@ -echo", "echo", false, true},
		{"plus is discarded", "+make -C sub", "make -C sub", true, false},
		{"all three", "+@-echo", "echo", false, true},
		{"leading whitespace", "\t @echo hi", "echo hi", false, false},
		{"modifier after content is text", "echo @hi", "echo @hi", true, false},
		{"dash inside command is text", "rm -f out", "rm -f out", true, false},
		{"only modifiers", "@-", "", false, true},
		{"empty", "", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			echo, ignoreError := true, false
			got := parseCommandPrefixes(tt.in, &echo, &ignoreError)
			assert.Equal(t, tt.wantText, got)
			assert.Equal(t, tt.wantEcho, echo, "echo")
			assert.Equal(t, tt.wantIgnoreError, ignoreError, "ignore_error")
		})
	}
}

func TestParseCommandPrefixesStartsFromBlockDefaults(t *testing.T) {
	// A line without modifiers keeps whatever the block established.
	echo, ignoreError := false, true
	got := parseCommandPrefixes("echo hi", &echo, &ignoreError)
	assert.Equal(t, "echo hi", got)
	assert.False(t, echo)
	assert.True(t, ignoreError)
}
