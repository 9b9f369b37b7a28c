package dep

import "github.com/vk/remake/internal/eval"

// Node is one resolved build rule instance: a target, its prerequisites
// in makefile order (duplicates preserved), the rule-local variable scope
// and the raw command templates to evaluate.
type Node struct {
	Output       string
	ActualInputs []string

	// OutputPattern is the matched pattern of a pattern-derived node;
	// HasPattern distinguishes an empty pattern from no pattern at all.
	OutputPattern string
	HasPattern    bool

	RuleVars map[string]eval.Var
	Loc      eval.Loc
	Cmds     []*eval.Value
}

// OutputName implements eval.DepNode.
func (n *Node) OutputName() string { return n.Output }

// Inputs implements eval.DepNode.
func (n *Node) Inputs() []string { return n.ActualInputs }

// Pattern implements eval.DepNode.
func (n *Node) Pattern() (string, bool) { return n.OutputPattern, n.HasPattern }
