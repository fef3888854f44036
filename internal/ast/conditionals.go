package ast

import "github.com/cwbudde/go-botlang/internal/coderef"

// If is the 'if' conditional: exactly one of Then/Else is evaluated.
type If struct {
	base
	Cond, Then, Else Node
}

func NewIf(cond, then, els Node) *If { return &If{Cond: cond, Then: then, Else: els} }

func (n *If) Kind() string { return "If" }

func (n *If) DeepCopy() Node {
	return (&If{Cond: n.Cond.DeepCopy(), Then: n.Then.DeepCopy(), Else: n.Else.DeepCopy()}).withRef(n.ref)
}

func (n *If) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *If) withRef(ref *coderef.Reference) *If            { n.ref = ref; return n }
func (n *If) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitIf(n, menv) }

// CondClause is implemented by CondPredicateClause and CondElseClause.
type CondClause interface {
	Node
	condClause()
}

// CondPredicateClause is one `(pred body)` arm of a Cond.
type CondPredicateClause struct {
	base
	Predicate Node
	Body      Node
}

func NewCondPredicateClause(pred, body Node) *CondPredicateClause {
	return &CondPredicateClause{Predicate: pred, Body: body}
}

func (n *CondPredicateClause) condClause()  {}
func (n *CondPredicateClause) Kind() string { return "CondPredicateClause" }

func (n *CondPredicateClause) DeepCopy() Node {
	return (&CondPredicateClause{Predicate: n.Predicate.DeepCopy(), Body: n.Body.DeepCopy()}).withRef(n.ref)
}

func (n *CondPredicateClause) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *CondPredicateClause) withRef(ref *coderef.Reference) *CondPredicateClause {
	n.ref = ref
	return n
}
func (n *CondPredicateClause) Accept(v Visitor, menv *MacroEnv) Node {
	return v.VisitCondPredicateClause(n, menv)
}

// CondElseClause is the trailing `(else body)` arm of a Cond, if present.
type CondElseClause struct {
	base
	Body Node
}

func NewCondElseClause(body Node) *CondElseClause { return &CondElseClause{Body: body} }

func (n *CondElseClause) condClause()  {}
func (n *CondElseClause) Kind() string { return "CondElseClause" }

func (n *CondElseClause) DeepCopy() Node {
	return (&CondElseClause{Body: n.Body.DeepCopy()}).withRef(n.ref)
}

func (n *CondElseClause) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *CondElseClause) withRef(ref *coderef.Reference) *CondElseClause {
	n.ref = ref
	return n
}
func (n *CondElseClause) Accept(v Visitor, menv *MacroEnv) Node {
	return v.VisitCondElseClause(n, menv)
}

// Cond is an ordered sequence of clauses; at most one CondElseClause is
// allowed, and it must be last. Well-formedness is enforced by the parser,
// not by this type.
type Cond struct {
	base
	Clauses []CondClause
}

func NewCond(clauses ...CondClause) *Cond { return &Cond{Clauses: clauses} }

func (n *Cond) Kind() string { return "Cond" }

func (n *Cond) DeepCopy() Node {
	clauses := make([]CondClause, len(n.Clauses))
	for i, c := range n.Clauses {
		clauses[i] = c.DeepCopy().(CondClause)
	}
	return (&Cond{Clauses: clauses}).withRef(n.ref)
}

func (n *Cond) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *Cond) withRef(ref *coderef.Reference) *Cond          { n.ref = ref; return n }
func (n *Cond) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitCond(n, menv) }

// And is a non-short-circuiting logical conjunction: both operands are
// always evaluated (spec.md §4.4.1, §8 law F). This is deliberate, not a
// bug: it keeps primitive-cache cursor advancement identical across
// replays regardless of which branch would otherwise have been skipped.
type And struct {
	base
	Left, Right Node
}

func NewAnd(left, right Node) *And { return &And{Left: left, Right: right} }

func (n *And) Kind() string { return "And" }

func (n *And) DeepCopy() Node {
	return (&And{Left: n.Left.DeepCopy(), Right: n.Right.DeepCopy()}).withRef(n.ref)
}

func (n *And) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *And) withRef(ref *coderef.Reference) *And           { n.ref = ref; return n }
func (n *And) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitAnd(n, menv) }

// Or is the non-short-circuiting counterpart to And.
type Or struct {
	base
	Left, Right Node
}

func NewOr(left, right Node) *Or { return &Or{Left: left, Right: right} }

func (n *Or) Kind() string { return "Or" }

func (n *Or) DeepCopy() Node {
	return (&Or{Left: n.Left.DeepCopy(), Right: n.Right.DeepCopy()}).withRef(n.ref)
}

func (n *Or) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *Or) withRef(ref *coderef.Reference) *Or            { n.ref = ref; return n }
func (n *Or) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitOr(n, menv) }
