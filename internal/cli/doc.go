// Package cli parses command-line arguments for the remake helper tools,
// validating user input and translating failures into process exit codes.
package cli
