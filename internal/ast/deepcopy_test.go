package ast

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/coderef"
	"github.com/cwbudde/go-botlang/internal/sexpr"
)

func TestDeepCopyIsIndependent(t *testing.T) {
	orig := &ListLiteral{Elements: []Node{
		NewValue(NumberLiteral(1)),
		NewValue(NumberLiteral(2)),
	}}

	copy := orig.DeepCopy().(*ListLiteral)
	copy.Elements[0] = NewValue(NumberLiteral(99))

	if orig.Elements[0].(*Value).Literal.Num != 1 {
		t.Fatalf("mutating the copy changed the original: got %v", orig.Elements[0].(*Value).Literal.Num)
	}
}

func TestDeepCopyPreservesCodeReference(t *testing.T) {
	v := NewValue(NumberLiteral(42)).WithCodeReference(coderef.New("<test>", 1, "42"))
	ref := v.CodeRef()
	cp := v.DeepCopy()
	if cp.CodeRef() != ref {
		t.Fatalf("DeepCopy should share the (immutable) code reference, not drop it")
	}
}

func TestDeepCopyDoesNotPropagateRawSExpr(t *testing.T) {
	n, err := NodeFromSExpr(sexpr.NewAtom("7"))
	if err != nil {
		t.Fatalf("NodeFromSExpr error: %v", err)
	}
	if n.RawSExpr() == nil {
		t.Fatal("NodeFromSExpr should attach the originating s-expression")
	}
	if n.DeepCopy().RawSExpr() != nil {
		t.Fatal("DeepCopy should not propagate raw s-expression: a copy is never itself a macro argument")
	}
}

func TestDefineSyntaxDeepCopyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected DefineSyntax.DeepCopy to panic")
		}
	}()
	ds := &DefineSyntax{Pattern: &SyntaxPattern{}}
	ds.DeepCopy()
}
