// Package macro implements Botlang's hygienic define-syntax-rule expander.
// Expander is an ast.Visitor that is only specialized for App (a macro
// call is syntactically indistinguishable from a function call until the
// callee is looked up in the macro environment) and DefineSyntax (registers
// the macro; ExpandProgram drops top-level definitions from the program);
// every other node variant keeps the default rebuild-and-recurse behavior
// inherited from ast.RebuildVisitor.
package macro

import (
	"fmt"

	"github.com/cwbudde/go-botlang/internal/ast"
	"github.com/cwbudde/go-botlang/internal/sexpr"
)

// Expander walks a parsed program, expanding every macro call it finds and
// collecting define-syntax-rule definitions into a MacroEnv as it goes.
type Expander struct {
	ast.RebuildVisitor
	err error
}

// NewExpander builds an Expander ready to walk a program.
func NewExpander() *Expander {
	e := &Expander{}
	e.Self = e
	return e
}

// ExpandProgram expands every macro call in nodes in order, threading a
// single macro environment across all of them so a define-syntax-rule
// earlier in the program is visible to calls later in it. Top-level
// DefineSyntax nodes are consumed here and do not appear in the result.
func (e *Expander) ExpandProgram(nodes []ast.Node) ([]ast.Node, error) {
	menv := ast.NewMacroEnv()
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		expanded := n.Accept(e, menv)
		if e.err != nil {
			return nil, e.err
		}
		if _, ok := expanded.(*ast.DefineSyntax); ok {
			continue
		}
		out = append(out, expanded)
	}
	return out, nil
}

// VisitDefineSyntax registers the macro under its pattern's name and
// returns the node unchanged; ExpandProgram is what actually drops it from
// the output.
func (e *Expander) VisitDefineSyntax(n *ast.DefineSyntax, menv *ast.MacroEnv) ast.Node {
	menv.Define(n.Pattern.Identifier.Token, n)
	return n
}

// VisitApp checks whether the callee names a macro; if so, expands the
// call and recursively expands the result (so a macro whose template
// itself invokes another macro is fully resolved), otherwise it falls back
// to the default recurse-into-children behavior.
func (e *Expander) VisitApp(n *ast.App, menv *ast.MacroEnv) ast.Node {
	if e.err != nil {
		return n
	}

	if id, ok := n.Callee.(*ast.Id); ok {
		if def, found := menv.Lookup(id.Name); found {
			expanded, err := expandMacro(def, n.Args)
			if err != nil {
				e.err = err
				return n
			}
			return expanded.Accept(e, menv)
		}
	}

	return e.RebuildVisitor.VisitApp(n, menv)
}

// expandMacro implements the five-step hygienic expansion: check arity,
// find the caller's identifiers, rename every template atom other than a
// pattern parameter that matches one of them, splice the caller's raw argument syntax in for
// each pattern parameter, then reparse the result into AST.
func expandMacro(def *ast.DefineSyntax, args []ast.Node) (ast.Node, error) {
	params := def.Pattern.Arguments
	if len(args) != len(params) {
		return nil, fmt.Errorf(
			"macro %s expects %d argument(s), got %d",
			def.Pattern.Identifier.Token, len(params), len(args),
		)
	}

	callerIdentifiers := collectIdentifiers(args)
	paramNames := make(map[string]bool, len(params))
	for _, p := range params {
		paramNames[p.Token] = true
	}
	existing := make(map[string]bool, len(callerIdentifiers))
	for name := range callerIdentifiers {
		if !paramNames[name] {
			existing[name] = true
		}
	}

	hygienicTemplate := def.Template.Accept(newHygienizer(existing))

	expandedSExpr := hygienicTemplate.Accept(newSplicer(spliceMapping(params, args)))

	return ast.NodeFromSExpr(expandedSExpr)
}

func spliceMapping(params []*sexpr.Atom, args []ast.Node) map[string]sexpr.SExpr {
	mapping := make(map[string]sexpr.SExpr, len(params))
	for i, p := range params {
		mapping[p.Token] = args[i].RawSExpr()
	}
	return mapping
}
