package ast

import (
	"github.com/cwbudde/go-botlang/internal/coderef"
	"github.com/cwbudde/go-botlang/internal/sexpr"
)

// SyntaxPattern is the `(name arg...)` head of a define-syntax-rule form:
// the macro's name and its formal pattern parameters.
type SyntaxPattern struct {
	Identifier *sexpr.Atom
	Arguments  []*sexpr.Atom
}

// DefineSyntax registers Pattern as a macro expanding to Template. It has
// no evaluation effect: the macro expander registers it, ExpandProgram drops
// it from the top level of a program, and internal/eval evaluates one left
// nested inside another form to nil.
//
// DefineSyntax deliberately has no working DeepCopy. A macro definition is
// registered once into a MacroEnv by identity and is never spliced into
// expanded output, so nothing in the expander ever needs an independent
// copy of one; DeepCopy panics rather than silently producing a shallow or
// incorrect clone.
type DefineSyntax struct {
	base
	Pattern  *SyntaxPattern
	Template sexpr.SExpr
}

func NewDefineSyntax(pattern *SyntaxPattern, template sexpr.SExpr) *DefineSyntax {
	return &DefineSyntax{Pattern: pattern, Template: template}
}

func (n *DefineSyntax) Kind() string { return "DefineSyntax" }

func (n *DefineSyntax) DeepCopy() Node {
	panic("ast: DefineSyntax nodes are not deep-copyable")
}

func (n *DefineSyntax) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *DefineSyntax) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitDefineSyntax(n, menv) }
