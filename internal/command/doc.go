// Package command turns one resolved dependency node into the ordered
// list of shell commands the build executor must run. It owns the
// automatic variables ($@, $<, $^, $+, $*, $? and their D/F derived
// forms), the @/-/+ prefix modifier parser and the continuation-aware
// line splitter, and orchestrates them around the general evaluator's
// template expansion.
//
// Nothing in this path is fatal by construction: unsupported automatic
// variables resolve to empty text behind a diagnostic, and only a fatal
// expansion error from the evaluator aborts a node, in which case no
// partial command list is returned.
package command
