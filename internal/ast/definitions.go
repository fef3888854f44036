package ast

import "github.com/cwbudde/go-botlang/internal/coderef"

// Definition binds Name to the value of Expr in the enclosing environment.
// Expr is evaluated in that same environment (already mutated to contain
// Name, bound to nil/undefined) so a Fun literal on the right-hand side can
// recurse by name.
type Definition struct {
	base
	Name string
	Expr Node
}

func NewDefinition(name string, expr Node) *Definition { return &Definition{Name: name, Expr: expr} }

func (n *Definition) Kind() string { return "Definition" }

func (n *Definition) DeepCopy() Node {
	return (&Definition{Name: n.Name, Expr: n.Expr.DeepCopy()}).withRef(n.ref)
}

func (n *Definition) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *Definition) withRef(ref *coderef.Reference) *Definition    { n.ref = ref; return n }
func (n *Definition) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitDefinition(n, menv) }

// Local introduces a fresh child environment, evaluates each Definition into
// it in order, then evaluates Body in that same environment.
type Local struct {
	base
	Defs []*Definition
	Body *BodySequence
}

func NewLocal(defs []*Definition, body *BodySequence) *Local { return &Local{Defs: defs, Body: body} }

func (n *Local) Kind() string { return "Local" }

func (n *Local) DeepCopy() Node {
	defs := make([]*Definition, len(n.Defs))
	for i, d := range n.Defs {
		defs[i] = d.DeepCopy().(*Definition)
	}
	return (&Local{Defs: defs, Body: n.Body.DeepCopy().(*BodySequence)}).withRef(n.ref)
}

func (n *Local) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *Local) withRef(ref *coderef.Reference) *Local         { n.ref = ref; return n }
func (n *Local) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitLocal(n, menv) }
