package ast

import (
	"fmt"

	"github.com/cwbudde/go-botlang/internal/coderef"
)

// LiteralKind distinguishes the flavors of literal a Value node can carry.
// The AST layer never touches internal/runtime (that would cycle back
// through Closure/BotNodeValue, which embed AST nodes) so literals are
// represented here with this small closed sum instead of runtime.Value.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralBoolean
	LiteralString
	LiteralSymbol
	LiteralNil
)

// Literal is the raw payload of a Value node.
type Literal struct {
	Kind LiteralKind
	Num  float64
	Bool bool
	Str  string // also used for LiteralSymbol
}

func NumberLiteral(n float64) Literal  { return Literal{Kind: LiteralNumber, Num: n} }
func BooleanLiteral(b bool) Literal    { return Literal{Kind: LiteralBoolean, Bool: b} }
func StringLiteral(s string) Literal   { return Literal{Kind: LiteralString, Str: s} }
func SymbolLiteral(s string) Literal   { return Literal{Kind: LiteralSymbol, Str: s} }
func NilLiteral() Literal              { return Literal{Kind: LiteralNil} }

func (l Literal) String() string {
	switch l.Kind {
	case LiteralNumber:
		return fmt.Sprintf("%v", l.Num)
	case LiteralBoolean:
		return fmt.Sprintf("%v", l.Bool)
	case LiteralString:
		return fmt.Sprintf("%q", l.Str)
	case LiteralSymbol:
		return l.Str
	default:
		return "nil"
	}
}

// Value is a literal atom: numeric, boolean, string, symbol, or nil.
type Value struct {
	base
	Literal Literal
}

func NewValue(lit Literal) *Value { return &Value{Literal: lit} }

func (v *Value) Kind() string { return "Value" }

func (v *Value) DeepCopy() Node {
	return (&Value{Literal: v.Literal}).withRef(v.ref)
}

func (v *Value) WithCodeReference(ref *coderef.Reference) Node {
	v.ref = ref
	return v
}

func (v *Value) withRef(ref *coderef.Reference) *Value {
	v.ref = ref
	return v
}

func (v *Value) Accept(vis Visitor, menv *MacroEnv) Node { return vis.VisitValue(v, menv) }

// ListLiteral is a literal heterogeneous sequence of AST nodes, evaluated
// element-wise.
type ListLiteral struct {
	base
	Elements []Node
}

func NewListLiteral(elements ...Node) *ListLiteral {
	return &ListLiteral{Elements: elements}
}

func (l *ListLiteral) Kind() string { return "ListLiteral" }

func (l *ListLiteral) DeepCopy() Node {
	elems := make([]Node, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.DeepCopy()
	}
	return (&ListLiteral{Elements: elems}).withRef(l.ref)
}

func (l *ListLiteral) WithCodeReference(ref *coderef.Reference) Node {
	l.ref = ref
	return l
}

func (l *ListLiteral) withRef(ref *coderef.Reference) *ListLiteral {
	l.ref = ref
	return l
}

func (l *ListLiteral) Accept(vis Visitor, menv *MacroEnv) Node {
	return vis.VisitListLiteral(l, menv)
}
