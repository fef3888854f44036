package eval

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/macro"
	"github.com/cwbudde/go-botlang/internal/parser"
	"github.com/cwbudde/go-botlang/internal/primitives"
	"github.com/cwbudde/go-botlang/internal/runtime"
)

func evalSource(t *testing.T, env *runtime.Environment, ev *Evaluator, source string) runtime.Value {
	t.Helper()
	forms, err := parser.Parse(source, "<test>")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	expanded, err := macro.NewExpander().ExpandProgram(forms)
	if err != nil {
		t.Fatalf("expand error: %v", err)
	}
	var result runtime.Value = runtime.Nil
	for _, n := range expanded {
		result, err = ev.Eval(n, env)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}
	}
	return result
}

func newTestEnv() *runtime.Environment {
	env := runtime.NewEnvironment()
	primitives.Install(env)
	return env
}

func TestArithmeticAndComparison(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	tests := []struct {
		source string
		want   string
	}{
		{"(+ 1 2 3)", "6"},
		{"(- 10 3 2)", "5"},
		{"(* 2 3 4)", "24"},
		{"(/ 12 3 2)", "2"},
		{"(< 1 2 3)", "true"},
		{"(< 1 3 2)", "false"},
		{"(= 2 2)", "true"},
	}
	for _, tt := range tests {
		got := evalSource(t, env, ev, tt.source)
		if got.String() != tt.want {
			t.Errorf("%s = %s, want %s", tt.source, got.String(), tt.want)
		}
	}
}

func TestIfAndCond(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	got := evalSource(t, env, ev, `(if (< 1 2) "yes" "no")`)
	if got.String() != "yes" {
		t.Errorf("if = %s, want yes", got.String())
	}

	got = evalSource(t, env, ev, `(cond ((= 1 2) "a") ((= 2 2) "b") (else "c"))`)
	if got.String() != "b" {
		t.Errorf("cond = %s, want b", got.String())
	}
}

func TestNilAndFalseAreTheOnlyFalsyValues(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	tests := []struct {
		source string
		want   string
	}{
		{`(if nil 1 2)`, "2"},
		{`(if false 1 2)`, "2"},
		{`(if 0 1 2)`, "1"},
		{`(if "" 1 2)`, "1"},
		{`(if true 1 2)`, "1"},
	}
	for _, tt := range tests {
		got := evalSource(t, env, ev, tt.source)
		if got.String() != tt.want {
			t.Errorf("%s = %s, want %s", tt.source, got.String(), tt.want)
		}
	}
}

func TestCondNoMatchFails(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)
	forms, err := parser.Parse(`(cond ((= 1 2) "a"))`, "<test>")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = ev.Eval(forms[0], env)
	if err == nil {
		t.Fatal("expected a no-matching-cond-clause error, got none")
	}
}

// And/Or must evaluate both operands even when the left one already
// determines the result, since the cache cursor used to replay cached
// primitive calls has to advance the same way on every run.
func TestAndOrAreNotShortCircuiting(t *testing.T) {
	env := newTestEnv()
	calls := 0
	env.AddPrimitives(map[string]*runtime.Primitive{
		"note": runtime.NewPrimitive("note", 0, false, func(args []runtime.Value) (runtime.Value, error) {
			calls++
			return runtime.Boolean{Val: true}, nil
		}),
	})
	ev := NewEvaluator(nil)

	evalSource(t, env, ev, "(and false (note))")
	if calls != 1 {
		t.Errorf("and: note() called %d times, want 1 (non-short-circuit)", calls)
	}

	calls = 0
	evalSource(t, env, ev, "(or true (note))")
	if calls != 1 {
		t.Errorf("or: note() called %d times, want 1 (non-short-circuit)", calls)
	}
}

func TestClosuresAndDefinitions(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	got := evalSource(t, env, ev, `
		(define add (fun (a b) (+ a b)))
		(add 3 4)`)
	if got.String() != "7" {
		t.Errorf("closure application = %s, want 7", got.String())
	}
}

func TestRecursiveDefinition(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	got := evalSource(t, env, ev, `
		(define fact (fun (n) (if (= n 0) 1 (* n (fact (- n 1))))))
		(fact 5)`)
	if got.String() != "120" {
		t.Errorf("fact(5) = %s, want 120", got.String())
	}
}

func TestLocalShadowing(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	got := evalSource(t, env, ev, `
		(define x 1)
		(local ((define x 2)) (+ x x))`)
	if got.String() != "4" {
		t.Errorf("local shadow = %s, want 4", got.String())
	}
	outer := evalSource(t, env, ev, "x")
	if outer.String() != "1" {
		t.Errorf("outer x leaked into local: got %s, want 1", outer.String())
	}
}

// TestCachedPrimitiveSuspendAndResume exercises a bot-node whose bot-result
// calls a cached primitive before suspending. A fresh run suspends
// immediately after caching the primitive's result; replaying the saved
// ExecutionState against the same program must walk straight through the
// bot-result (not suspend again) and must not invoke the primitive a second
// time, reusing the cached value instead.
func TestCachedPrimitiveSuspendAndResume(t *testing.T) {
	calls := 0
	newEnvWithProbe := func() *runtime.Environment {
		env := newTestEnv()
		env.AddPrimitives(map[string]*runtime.Primitive{
			"probe": runtime.NewPrimitive("probe", 0, true, func(args []runtime.Value) (runtime.Value, error) {
				calls++
				return runtime.Number{Val: float64(calls)}, nil
			}),
		})
		return env
	}

	const source = `
		(define greet (bot-node (name) (bot-result (probe) name (fun (x) x))))
		(greet "alice")`

	env1 := newEnvWithProbe()
	ev1 := NewEvaluator(nil)
	result1 := evalSource(t, env1, ev1, source)
	br, ok := result1.(*runtime.BotResultValue)
	if !ok {
		t.Fatalf("expected a suspended *runtime.BotResultValue, got %T", result1)
	}
	if calls != 1 {
		t.Fatalf("probe called %d times on first run, want 1", calls)
	}
	if len(br.State.PrimitiveValues) != 1 || br.State.PrimitiveValues[0].String() != "1" {
		t.Fatalf("unexpected cached state: %+v", br.State)
	}

	env2 := newEnvWithProbe()
	ev2 := NewEvaluator(br.State)
	result2 := evalSource(t, env2, ev2, source)
	if calls != 1 {
		t.Fatalf("probe called %d times total after resume, want 1 (replayed from cache)", calls)
	}
	if result2.String() != "1" {
		t.Errorf("resumed walk-through result = %s, want 1 (the cached probe value threaded through as data)", result2.String())
	}
}

func TestBotNodeAppliesSingleArgAndBindsRestFromContext(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	const source = `
		(define greeting "hello")
		(define greet (bot-node (name greeting) (str-concat greeting name)))
		(greet "alice")`

	got := evalSource(t, env, ev, source)
	if got.String() != "helloalice" {
		t.Errorf("greet(\"alice\") = %s, want helloalice", got.String())
	}
}

func TestBotNodeRejectsMoreThanOneArgument(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)

	forms, err := parser.Parse(`(define greet (bot-node (name) name)) (greet "a" "b")`, "<test>")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	expanded, err := macro.NewExpander().ExpandProgram(forms)
	if err != nil {
		t.Fatalf("expand error: %v", err)
	}
	for i, n := range expanded {
		_, err = ev.Eval(n, env)
		if i == len(expanded)-1 && err == nil {
			t.Fatal("expected an error applying a bot-node with more than one argument")
		}
	}
}

func TestUnboundIdentifierFails(t *testing.T) {
	env := newTestEnv()
	ev := NewEvaluator(nil)
	forms, err := parser.Parse("nope", "<test>")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := ev.Eval(forms[0], env); err == nil {
		t.Fatal("expected an unbound identifier error, got none")
	}
}
