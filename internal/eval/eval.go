package eval

import (
	"fmt"
	"log/slog"
	"strings"
)

// DepNode is the read-only view of a resolved dependency node that
// automatic variables evaluate against.
type DepNode interface {
	OutputName() string
	Inputs() []string
	// Pattern returns the node's output pattern and whether one is set.
	Pattern() (string, bool)
}

// Evaluator holds the variable namespace and the transient context of one
// in-flight evaluation.
type Evaluator struct {
	globals map[string]Var
	scope   map[string]Var
	loc     Loc

	evaluatingCommand bool
	currentDepNode    DepNode
	delayedOutput     []string

	logger *slog.Logger
}

// New returns an evaluator with an empty global namespace. Non-fatal
// diagnostics are reported through logger; a nil logger falls back to
// slog.Default.
func New(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		globals: make(map[string]Var),
		logger:  logger,
	}
}

// SetGlobalVar binds name in the global namespace, replacing any previous
// binding.
func (ev *Evaluator) SetGlobalVar(name string, v Var) {
	ev.globals[name] = v
}

// LookupVar resolves name against the current rule scope first, then the
// global namespace.
func (ev *Evaluator) LookupVar(name string) (Var, bool) {
	if ev.scope != nil {
		if v, ok := ev.scope[name]; ok {
			return v, true
		}
	}
	v, ok := ev.globals[name]
	return v, ok
}

// SetCurrentScope installs the rule-local variable scope; nil clears it.
func (ev *Evaluator) SetCurrentScope(scope map[string]Var) {
	ev.scope = scope
}

// SetLoc records the source location subsequent diagnostics refer to.
func (ev *Evaluator) SetLoc(loc Loc) { ev.loc = loc }

// Loc returns the current source location.
func (ev *Evaluator) Loc() Loc { return ev.loc }

// SetEvaluatingCommand flags that a command body is being expanded, which
// alters some expansion behaviors.
func (ev *Evaluator) SetEvaluatingCommand(on bool) { ev.evaluatingCommand = on }

// EvaluatingCommand reports whether a command body is being expanded.
func (ev *Evaluator) EvaluatingCommand() bool { return ev.evaluatingCommand }

// SetCurrentDepNode installs a dependency-node override for nested
// expansions; nil removes it.
func (ev *Evaluator) SetCurrentDepNode(n DepNode) { ev.currentDepNode = n }

// CurrentDepNode returns the node override installed by a nested
// expansion, or nil when none is active.
func (ev *Evaluator) CurrentDepNode() DepNode { return ev.currentDepNode }

// AddDelayedOutputCommand queues a command scheduled as a side effect of
// expansion, to be emitted ahead of the current node's normal commands.
func (ev *Evaluator) AddDelayedOutputCommand(cmd string) {
	ev.delayedOutput = append(ev.delayedOutput, cmd)
}

// DelayedOutputCommands returns the queued delayed output commands in
// arrival order.
func (ev *Evaluator) DelayedOutputCommands() []string {
	return ev.delayedOutput
}

// ClearDelayedOutputCommands empties the delayed output queue.
func (ev *Evaluator) ClearDelayedOutputCommands() {
	ev.delayedOutput = nil
}

// Diagf reports a non-fatal diagnostic tied to the current location.
// Evaluation continues; the offending reference expands to empty text.
func (ev *Evaluator) Diagf(format string, args ...any) {
	ev.logger.Warn(fmt.Sprintf(format, args...), "loc", ev.loc.String())
}

// ExpandString expands every variable reference in s: "$$" escapes a
// dollar, "$(name)" and "${name}" reference by full name with nested
// references inside the delimiters expanded first, and any other "$x"
// references the single-character variable x. Undefined variables expand
// to empty text. An unterminated reference is a fatal expansion error.
func (ev *Evaluator) ExpandString(s string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '$' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			sb.WriteByte('$')
			break
		}
		switch open := s[i+1]; open {
		case '$':
			sb.WriteByte('$')
			i += 2
		case '(', '{':
			closer := byte(')')
			if open == '{' {
				closer = '}'
			}
			end, ok := findCloser(s, i+2, open, closer)
			if !ok {
				return "", fmt.Errorf("%s: unterminated variable reference in %q", ev.loc, s[i:])
			}
			name, err := ev.ExpandString(s[i+2 : end])
			if err != nil {
				return "", err
			}
			if err := ev.appendVarRef(name, &sb); err != nil {
				return "", err
			}
			i = end + 1
		default:
			if err := ev.appendVarRef(string(open), &sb); err != nil {
				return "", err
			}
			i += 2
		}
	}
	return sb.String(), nil
}

// findCloser scans for the closer matching an already-consumed opener,
// honoring nesting of the same delimiter kind.
func findCloser(s string, start int, open, closer byte) (int, bool) {
	depth := 1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// appendVarRef appends the value of the named variable. An undefined name
// expands to nothing; names that look like function calls belong to the
// expansion-function library and additionally report a diagnostic.
func (ev *Evaluator) appendVarRef(name string, sb *strings.Builder) error {
	if v, ok := ev.LookupVar(name); ok {
		return v.Eval(ev, sb)
	}
	if fields := strings.Fields(name); len(fields) > 1 {
		ev.Diagf("*warning*: unknown function %q", fields[0])
	}
	return nil
}
