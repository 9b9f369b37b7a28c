package command

import (
	"time"

	"github.com/vk/remake/internal/config"
	"github.com/vk/remake/internal/dep"
	"github.com/vk/remake/internal/eval"
	"github.com/vk/remake/internal/fsutil"
	"github.com/vk/remake/internal/strutil"
)

// TimestampFunc reports the modification time of a file, with the zero
// time standing in for a missing file.
type TimestampFunc func(name string) time.Time

// Evaluator produces the command lists for dependency nodes. One
// Evaluator serves one evaluation stream; a build driver that evaluates
// nodes concurrently must give each worker its own Evaluator together
// with its own eval.Evaluator.
type Evaluator struct {
	ev          *eval.Evaluator
	flags       *config.Flags
	timestamp   TimestampFunc
	currentNode eval.DepNode
}

// NewEvaluator registers the automatic variables in ev's global namespace
// and returns the command evaluator bound to it. Each base symbol also
// registers its D and F derived forms. In ninja generation mode `$?`
// degrades to the unimplemented placeholder because prerequisite
// timestamps are not known at generation time.
func NewEvaluator(ev *eval.Evaluator, flags *config.Flags) *Evaluator {
	ce := &Evaluator{ev: ev, flags: flags, timestamp: fsutil.Timestamp}
	insert := func(sym string, kind autoVarKind) {
		base := &autoVar{ce: ce, sym: sym, kind: kind}
		ev.SetGlobalVar(sym, base)
		ev.SetGlobalVar(sym+"D", &suffixVar{sym: sym + "D", wrapped: base, transform: strutil.Dirname})
		ev.SetGlobalVar(sym+"F", &suffixVar{sym: sym + "F", wrapped: base, transform: strutil.Basename})
	}
	insert("@", autoAt)
	insert("<", autoLess)
	insert("^", autoHat)
	insert("+", autoPlus)
	insert("*", autoStar)
	if !flags.GenerateNinja {
		insert("?", autoQuestion)
	} else {
		insert("?", autoNotImplemented)
	}
	// TODO: implement $% (archive member) and $| (order-only inputs).
	insert("%", autoNotImplemented)
	insert("|", autoNotImplemented)
	return ce
}

// SetTimestampFunc replaces the file timestamp source consulted by `$?`.
func (ce *Evaluator) SetTimestampFunc(fn TimestampFunc) {
	ce.timestamp = fn
}

// Evaluate expands node n's command templates and returns the ordered
// commands the executor must run. Delayed output commands queued during
// expansion are emitted ahead of the template-produced commands. A fatal
// expansion error aborts the node: no partial list is returned.
func (ce *Evaluator) Evaluate(n *dep.Node) ([]*Command, error) {
	ev := ce.ev
	ev.SetLoc(n.Loc)
	ev.SetCurrentScope(n.RuleVars)
	ev.SetEvaluatingCommand(true)
	ce.currentNode = n
	defer func() {
		ce.currentNode = nil
		ev.SetCurrentScope(nil)
		ev.SetEvaluatingCommand(false)
	}()

	var result []*Command
	for _, tmpl := range n.Cmds {
		ev.SetLoc(tmpl.Loc)
		cmds, err := tmpl.Eval(ev)
		if err != nil {
			return nil, err
		}

		// Modifiers at the head of the whole expanded block set the
		// defaults for every line it splits into.
		echo := !ce.flags.IsSilentMode
		ignoreError := false
		cmds = parseCommandPrefixes(cmds, &echo, &ignoreError)
		if cmds == "" {
			continue
		}

		for {
			idx := strutil.FindEndOfLine(cmds)
			line := strutil.TrimLeftSpace(cmds[:idx])
			last := idx == len(cmds)
			if !last {
				cmds = cmds[idx+1:]
			}

			lineEcho, lineIgnoreError := echo, ignoreError
			line = parseCommandPrefixes(line, &lineEcho, &lineIgnoreError)
			if line != "" {
				result = append(result, &Command{
					Output:      n.Output,
					Cmd:         line,
					Echo:        lineEcho,
					IgnoreError: lineIgnoreError,
				})
			}
			if last {
				break
			}
		}
	}

	if delayed := ev.DelayedOutputCommands(); len(delayed) > 0 {
		merged := make([]*Command, 0, len(delayed)+len(result))
		for _, cmd := range delayed {
			merged = append(merged, &Command{Output: n.Output, Cmd: cmd})
		}
		result = append(merged, result...)
		ev.ClearDelayedOutputCommands()
	}

	return result, nil
}
