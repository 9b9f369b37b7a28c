// Package eval hosts the variable-expansion evaluator the command engine
// plugs into. It owns the variable namespace (global and rule-local), the
// current source location, the evaluating-command flag, the queue of
// delayed output commands, and the expansion of $-references in raw text.
//
// The Evaluator doubles as the evaluation context of one in-flight
// command evaluation: its mutable state is installed at the start of a
// call and restored on every exit path. It is not safe for concurrent
// use; build drivers that evaluate nodes in parallel must give each
// worker its own Evaluator.
package eval
