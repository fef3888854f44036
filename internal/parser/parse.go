package parser

import (
	"github.com/cwbudde/go-botlang/internal/ast"
)

// Parse reads every top-level form in source and converts it straight to
// AST, with no macro expansion performed. Callers that want macro support
// run the result through internal/macro.Expander.ExpandProgram before
// handing it to the evaluator; internal/parser stays ignorant of macros
// entirely, matching how the reader and to-ast conversion are a single
// concern distinct from expansion in the source implementation.
func Parse(source, file string) ([]ast.Node, error) {
	forms, err := NewReader(source, file).ReadAll()
	if err != nil {
		return nil, err
	}
	nodes := make([]ast.Node, len(forms))
	for i, f := range forms {
		n, err := ast.NodeFromSExpr(f)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}
