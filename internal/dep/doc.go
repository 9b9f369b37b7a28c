// Package dep defines the resolved dependency-node model the command
// evaluator consumes. Nodes are produced by the dependency-graph builder
// and are read-only from this side: prerequisite order, duplicates and
// rule-local scopes arrive exactly as resolution left them.
package dep
