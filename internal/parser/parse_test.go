package parser

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/ast"
)

func TestParseLiterals(t *testing.T) {
	nodes, err := Parse(`42 "hello" true false nil sym`, "<test>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(nodes) != 6 {
		t.Fatalf("got %d nodes, want 6", len(nodes))
	}

	v, ok := nodes[0].(*ast.Value)
	if !ok || v.Literal.Kind != ast.LiteralNumber || v.Literal.Num != 42 {
		t.Errorf("nodes[0] = %#v, want number 42", nodes[0])
	}

	s, ok := nodes[1].(*ast.Value)
	if !ok || s.Literal.Kind != ast.LiteralString || s.Literal.Str != "hello" {
		t.Errorf("nodes[1] = %#v, want string hello", nodes[1])
	}

	id, ok := nodes[5].(*ast.Id)
	if !ok || id.Name != "sym" {
		t.Errorf("nodes[5] = %#v, want Id sym", nodes[5])
	}
}

func TestParseSkipsComments(t *testing.T) {
	nodes, err := Parse("; a comment\n42 ; trailing\n", "<test>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
}

func TestParseApplication(t *testing.T) {
	nodes, err := Parse("(+ 1 2)", "<test>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	app, ok := nodes[0].(*ast.App)
	if !ok {
		t.Fatalf("nodes[0] = %#v, want *ast.App", nodes[0])
	}
	if id, ok := app.Callee.(*ast.Id); !ok || id.Name != "+" {
		t.Errorf("callee = %#v, want Id +", app.Callee)
	}
	if len(app.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(app.Args))
	}
}

func TestParseDoesNotExpandMacros(t *testing.T) {
	nodes, err := Parse(`(define-syntax-rule (twice x) (+ x x)) (twice 1)`, "<test>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok := nodes[0].(*ast.DefineSyntax); !ok {
		t.Errorf("nodes[0] = %#v, want *ast.DefineSyntax (parser should not expand macros)", nodes[0])
	}
	if _, ok := nodes[1].(*ast.App); !ok {
		t.Errorf("nodes[1] = %#v, want *ast.App (twice 1) left unexpanded", nodes[1])
	}
}

func TestParseNodesCarryCodeReference(t *testing.T) {
	nodes, err := Parse("(+ 1 2)\n", "myfile.bot")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ref := nodes[0].CodeRef()
	if ref == nil {
		t.Fatal("expected a non-nil code reference")
	}
	if ref.File != "myfile.bot" || ref.StartLine != 1 {
		t.Errorf("ref = %+v, want file myfile.bot line 1", ref)
	}
}
