package ast

import "github.com/cwbudde/go-botlang/internal/coderef"

// Id is a bare identifier reference, resolved against the runtime
// environment at evaluation time.
type Id struct {
	base
	Name string
}

func NewId(name string) *Id { return &Id{Name: name} }

func (n *Id) Kind() string { return "Id" }

func (n *Id) DeepCopy() Node { return (&Id{Name: n.Name}).withRef(n.ref) }

func (n *Id) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *Id) withRef(ref *coderef.Reference) *Id            { n.ref = ref; return n }
func (n *Id) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitId(n, menv) }
