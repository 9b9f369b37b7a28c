package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/remake/internal/cli"
	"github.com/vk/remake/internal/fsutil"
	"github.com/vk/remake/internal/strutil"
)

// main is the entrypoint for remake-newer, the out-of-process evaluator
// for `$?` invoked by generated build files.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the tool's logic so tests can drive it against a buffer.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.ParseNewer(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	targetAge := fsutil.Timestamp(cfg.Target)
	var sb strings.Builder
	ww := strutil.NewWordWriter(&sb)
	for _, prereq := range cfg.Prereqs {
		if fsutil.Timestamp(prereq).After(targetAge) {
			ww.Write(prereq)
		}
	}
	if sb.Len() > 0 {
		fmt.Fprintln(outW, sb.String())
	}
	return nil
}
