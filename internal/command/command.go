package command

// Command is one shell command to run for a target. Echo reports whether
// the executor should print the command line before running it;
// IgnoreError makes a non-zero exit status non-fatal.
type Command struct {
	Output      string
	Cmd         string
	Echo        bool
	IgnoreError bool
}
