package command

import (
	"strings"

	"github.com/vk/remake/internal/eval"
	"github.com/vk/remake/internal/strutil"
)

type autoVarKind int

const (
	autoAt             autoVarKind = iota // $@: the target output name
	autoLess                              // $<: first prerequisite
	autoHat                               // $^: prerequisites, de-duplicated
	autoPlus                              // $+: prerequisites, duplicates kept
	autoStar                              // $*: pattern stem
	autoQuestion                          // $?: prerequisites newer than the target
	autoNotImplemented                    // $%, $|, and $? in restricted mode
)

// autoVar is one base automatic variable. The set is fixed by the make
// specification and never extended at runtime, so the variants form a
// closed tag set dispatched in Eval rather than an open type hierarchy.
type autoVar struct {
	ce   *Evaluator
	sym  string
	kind autoVarKind
}

// currentNode resolves the node the variable reads from: a nested
// expansion may have installed an override on the context, otherwise the
// node of the enclosing Evaluate call applies.
func (v *autoVar) currentNode(ev *eval.Evaluator) eval.DepNode {
	if n := ev.CurrentDepNode(); n != nil {
		return n
	}
	return v.ce.currentNode
}

func (v *autoVar) Eval(ev *eval.Evaluator, sb *strings.Builder) error {
	switch v.kind {
	case autoAt:
		sb.WriteString(v.currentNode(ev).OutputName())
	case autoLess:
		if inputs := v.currentNode(ev).Inputs(); len(inputs) > 0 {
			sb.WriteString(inputs[0])
		}
	case autoHat:
		seen := make(map[string]bool)
		ww := strutil.NewWordWriter(sb)
		for _, input := range v.currentNode(ev).Inputs() {
			if !seen[input] {
				seen[input] = true
				ww.Write(input)
			}
		}
	case autoPlus:
		ww := strutil.NewWordWriter(sb)
		for _, input := range v.currentNode(ev).Inputs() {
			ww.Write(input)
		}
	case autoStar:
		n := v.currentNode(ev)
		pat, ok := n.Pattern()
		if !ok {
			return nil
		}
		sb.WriteString(strutil.NewPattern(pat).Stem(n.OutputName()))
	case autoQuestion:
		n := v.currentNode(ev)
		seen := make(map[string]bool)
		ww := strutil.NewWordWriter(sb)
		targetAge := v.ce.timestamp(n.OutputName())
		for _, input := range n.Inputs() {
			if !seen[input] {
				seen[input] = true
				if v.ce.timestamp(input).After(targetAge) {
					ww.Write(input)
				}
			}
		}
	case autoNotImplemented:
		ev.Diagf("Automatic variable `$%s' isn't supported yet", v.sym)
	}
	return nil
}

func (v *autoVar) Flavor() string { return "undefined" }
func (v *autoVar) IsFunc() bool   { return true }

func (v *autoVar) Literal(ev *eval.Evaluator) string {
	ev.Diagf("$(value %s) is not implemented yet", v.sym)
	return ""
}

// suffixVar derives the D and F forms of a base automatic variable: the
// wrapped variable's value is split into whitespace-delimited tokens,
// each token mapped through transform, and the results rejoined with
// single spaces.
type suffixVar struct {
	sym       string
	wrapped   eval.Var
	transform func(string) string
}

func (v *suffixVar) Eval(ev *eval.Evaluator, sb *strings.Builder) error {
	var buf strings.Builder
	if err := v.wrapped.Eval(ev, &buf); err != nil {
		return err
	}
	ww := strutil.NewWordWriter(sb)
	for _, tok := range strutil.Words(buf.String()) {
		ww.Write(v.transform(tok))
	}
	return nil
}

func (v *suffixVar) Flavor() string { return "undefined" }
func (v *suffixVar) IsFunc() bool   { return true }

func (v *suffixVar) Literal(ev *eval.Evaluator) string {
	ev.Diagf("$(value %s) is not implemented yet", v.sym)
	return ""
}
