package eval

// Value is one raw, unexpanded template together with the source location
// it came from.
type Value struct {
	Expr string
	Loc  Loc
}

// Eval expands the template through the evaluator.
func (v *Value) Eval(ev *Evaluator) (string, error) {
	return ev.ExpandString(v.Expr)
}
