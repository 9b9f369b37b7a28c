package cli

import (
	"flag"
	"fmt"
	"io"
)

// ExitError carries a message and the exit code the process should
// terminate with.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewerConfig is the parsed command line of remake-newer.
type NewerConfig struct {
	Target  string
	Prereqs []string
}

// ParseNewer processes remake-newer's arguments. It returns the parsed
// config, a boolean indicating the program should exit cleanly (help), or
// an ExitError for invalid usage.
func ParseNewer(args []string, output io.Writer) (*NewerConfig, bool, error) {
	flagSet := flag.NewFlagSet("remake-newer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
remake-newer - evaluate $? out of process.

Usage:
  remake-newer TARGET [PREREQ...]

Prints, space separated, every PREREQ whose modification time is strictly
newer than TARGET's. A missing file counts as older than everything.
`)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() < 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "remake-newer: missing target operand"}
	}

	return &NewerConfig{
		Target:  flagSet.Arg(0),
		Prereqs: flagSet.Args()[1:],
	}, false, nil
}
