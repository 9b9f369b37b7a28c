package command

import "github.com/vk/remake/internal/strutil"

// parseCommandPrefixes strips the leading @, - and + modifiers from cmd
// and folds them into echo and ignoreError: '@' disables echoing, '-'
// ignores a failing exit status, '+' (the explicit recursion marker) is
// accepted and discarded. Whitespace before and between modifiers is
// skipped; a modifier character after any other content is ordinary text.
func parseCommandPrefixes(cmd string, echo, ignoreError *bool) string {
	cmd = strutil.TrimLeftSpace(cmd)
	for cmd != "" {
		switch cmd[0] {
		case '@':
			*echo = false
		case '-':
			*ignoreError = true
		case '+':
			// recursion marker
		default:
			return cmd
		}
		cmd = strutil.TrimLeftSpace(cmd[1:])
	}
	return cmd
}
