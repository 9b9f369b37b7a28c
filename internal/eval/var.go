package eval

import "strings"

// Var is a variable binding visible to expansion. Implementations append
// their expanded value to a builder rather than returning a string so
// word-joining callers can reuse one buffer.
type Var interface {
	// Eval appends the variable's fully expanded value to sb.
	Eval(ev *Evaluator, sb *strings.Builder) error

	// Flavor reports the make flavor of the variable: "simple",
	// "recursive" or "undefined".
	Flavor() string

	// IsFunc reports whether the variable is computed on every reference
	// instead of holding stored text.
	IsFunc() bool

	// Literal returns the variable's unexpanded form, as consumed by
	// $(value ...). Variables without one report a non-fatal diagnostic
	// and return "".
	Literal(ev *Evaluator) string
}

// SimpleVar is an immediately-expanded (":=") variable holding flat text.
type SimpleVar struct {
	value string
}

// NewSimpleVar returns a simple variable holding value verbatim.
func NewSimpleVar(value string) *SimpleVar {
	return &SimpleVar{value: value}
}

func (v *SimpleVar) Eval(_ *Evaluator, sb *strings.Builder) error {
	sb.WriteString(v.value)
	return nil
}

func (v *SimpleVar) Flavor() string            { return "simple" }
func (v *SimpleVar) IsFunc() bool              { return false }
func (v *SimpleVar) Literal(*Evaluator) string { return v.value }

// RecursiveVar is a lazily-expanded ("=") variable whose stored text is
// re-expanded on every reference.
type RecursiveVar struct {
	expr string
}

// NewRecursiveVar returns a recursive variable holding the unexpanded expr.
func NewRecursiveVar(expr string) *RecursiveVar {
	return &RecursiveVar{expr: expr}
}

func (v *RecursiveVar) Eval(ev *Evaluator, sb *strings.Builder) error {
	s, err := ev.ExpandString(v.expr)
	if err != nil {
		return err
	}
	sb.WriteString(s)
	return nil
}

func (v *RecursiveVar) Flavor() string            { return "recursive" }
func (v *RecursiveVar) IsFunc() bool              { return false }
func (v *RecursiveVar) Literal(*Evaluator) string { return v.expr }
