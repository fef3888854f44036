// Package sexpr implements the raw S-expression surface used only by the
// macro expander (botlang/internal/macro). The parser's first pass turns
// source text into this tree; a later pass (ast.NodeFromSExpr) turns an
// S-expression into the typed AST the evaluator walks. The evaluator never
// sees an SExpr directly.
package sexpr

import (
	"strings"

	"github.com/cwbudde/go-botlang/internal/coderef"
)

// SExpr is the closed sum of the surface syntax: an Atom (a bare token) or
// a Compound (a parenthesized sequence of child SExprs).
type SExpr interface {
	// DeepCopy returns a fully independent copy of this sub-tree. The code
	// reference, like in the AST, is immutable and may be shared.
	DeepCopy() SExpr

	// Accept dispatches to the matching method on v and returns the
	// (possibly rewritten) replacement for this node.
	Accept(v Visitor) SExpr

	// Ref returns the source location, if any.
	Ref() *coderef.Reference

	sExprNode()
}

// Visitor is the rebuilding walk used by macro expansion. A Visitor that
// only cares about one variant should embed RebuildVisitor so every other
// variant keeps its default "recurse and rebuild" behavior.
type Visitor interface {
	VisitAtom(*Atom) SExpr
	VisitCompound(*Compound) SExpr
}

// Atom is a single token: a symbol, number, string literal, boolean, or
// keyword, exactly as it appeared in the source.
type Atom struct {
	Token string
	ref   *coderef.Reference
}

// NewAtom builds an Atom from its raw token text.
func NewAtom(token string) *Atom {
	return &Atom{Token: token}
}

func (a *Atom) sExprNode() {}

func (a *Atom) Ref() *coderef.Reference { return a.ref }

// WithRef attaches a code reference and returns the same atom (builder-style).
func (a *Atom) WithRef(ref *coderef.Reference) *Atom {
	a.ref = ref
	return a
}

func (a *Atom) DeepCopy() SExpr {
	cp := &Atom{Token: a.Token, ref: a.ref}
	return cp
}

func (a *Atom) Accept(v Visitor) SExpr { return v.VisitAtom(a) }

// Compound is a parenthesized sequence of child forms, e.g. (+ 1 2).
type Compound struct {
	Children []SExpr
	ref      *coderef.Reference
}

// NewCompound builds a Compound from its children.
func NewCompound(children ...SExpr) *Compound {
	return &Compound{Children: children}
}

func (c *Compound) sExprNode() {}

func (c *Compound) Ref() *coderef.Reference { return c.ref }

func (c *Compound) WithRef(ref *coderef.Reference) *Compound {
	c.ref = ref
	return c
}

func (c *Compound) DeepCopy() SExpr {
	children := make([]SExpr, len(c.Children))
	for i, child := range c.Children {
		children[i] = child.DeepCopy()
	}
	return &Compound{Children: children, ref: c.ref}
}

func (c *Compound) Accept(v Visitor) SExpr { return v.VisitCompound(c) }

// RebuildVisitor is the default "recurse and rebuild" traversal: every
// variant is returned after its children have been independently visited.
// Embed it and override the handful of methods you actually care about.
type RebuildVisitor struct {
	// Self must be set to the embedding visitor so overridden methods are
	// used when recursing into children. When nil, the base behavior visits
	// with itself, which is only correct for a pass that overrides nothing.
	Self Visitor
}

func (r *RebuildVisitor) self() Visitor {
	if r.Self != nil {
		return r.Self
	}
	return r
}

func (r *RebuildVisitor) VisitAtom(a *Atom) SExpr { return a }

func (r *RebuildVisitor) VisitCompound(c *Compound) SExpr {
	children := make([]SExpr, len(c.Children))
	for i, child := range c.Children {
		children[i] = child.Accept(r.self())
	}
	return &Compound{Children: children, ref: c.ref}
}

// String renders an S-expression back to Botlang surface syntax, used for
// diagnostics and the `botlang parse` CLI command.
func String(s SExpr) string {
	switch n := s.(type) {
	case *Atom:
		return n.Token
	case *Compound:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = String(c)
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "?"
	}
}
