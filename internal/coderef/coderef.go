// Package coderef holds the source-location metadata attached to both
// S-expressions and AST nodes. It is deliberately tiny and dependency-free
// so that the sexpr and ast packages can both depend on it without forming
// an import cycle between themselves.
package coderef

import "fmt"

// Reference pins a node or S-expression to the source text it came from.
// It is immutable once built, which is what lets deep copies share it
// instead of duplicating it.
type Reference struct {
	File      string
	StartLine int
	Code      string
}

// New builds a Reference.
func New(file string, startLine int, code string) *Reference {
	return &Reference{File: file, StartLine: startLine, Code: code}
}

// String renders a one-line location, used by trace summaries.
func (r *Reference) String() string {
	if r == nil {
		return "<unknown>"
	}
	if r.File == "" {
		return fmt.Sprintf("line %d", r.StartLine)
	}
	return fmt.Sprintf("%s:%d", r.File, r.StartLine)
}
