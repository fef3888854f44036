package macro

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/eval"
	"github.com/cwbudde/go-botlang/internal/parser"
	"github.com/cwbudde/go-botlang/internal/primitives"
	"github.com/cwbudde/go-botlang/internal/runtime"
)

func run(t *testing.T, source string) runtime.Value {
	t.Helper()
	forms, err := parser.Parse(source, "<test>")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	expanded, err := NewExpander().ExpandProgram(forms)
	if err != nil {
		t.Fatalf("expand error: %v", err)
	}
	env := runtime.NewEnvironment()
	primitives.Install(env)
	ev := eval.NewEvaluator(nil)
	var result runtime.Value = runtime.Nil
	for _, n := range expanded {
		result, err = ev.Eval(n, env)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}
	}
	return result
}

// TestHygieneAvoidsCapturingCallerIdentifier is the canonical
// define-syntax-rule capture test: the macro template introduces a local
// binding named tmp, and the caller happens to reference a free variable
// also named tmp. A non-hygienic expansion would have the macro's `tmp`
// shadow the caller's, silently returning the wrong value.
func TestHygieneAvoidsCapturingCallerIdentifier(t *testing.T) {
	const source = `
		(define-syntax-rule (my-or a b)
			(local ((define tmp a)) (if tmp tmp b)))
		(define tmp 100)
		(my-or false tmp)`

	got := run(t, source)
	if got.String() != "100" {
		t.Fatalf("my-or false tmp = %s, want 100 (hygiene should prevent the macro's own tmp from capturing the caller's tmp)", got.String())
	}
}

// TestMacroExpandsEveryParameterOccurrence confirms splicing substitutes
// the caller's raw syntax at every occurrence of a pattern parameter, not
// just the first.
func TestMacroExpandsEveryParameterOccurrence(t *testing.T) {
	const source = `
		(define-syntax-rule (twice x) (+ x x))
		(twice (+ 1 1))`

	got := run(t, source)
	if got.String() != "4" {
		t.Fatalf("twice (+ 1 1) = %s, want 4", got.String())
	}
}

func TestMacroArityMismatchFails(t *testing.T) {
	const source = `
		(define-syntax-rule (add2 a b) (+ a b))
		(add2 1)`

	forms, err := parser.Parse(source, "<test>")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := NewExpander().ExpandProgram(forms); err == nil {
		t.Fatal("expected an arity mismatch error expanding add2, got none")
	}
}

func TestMacroExpandingToAnotherMacro(t *testing.T) {
	const source = `
		(define-syntax-rule (inc x) (+ x 1))
		(define-syntax-rule (inc2 x) (inc (inc x)))
		(inc2 5)`

	got := run(t, source)
	if got.String() != "7" {
		t.Fatalf("inc2 5 = %s, want 7", got.String())
	}
}
