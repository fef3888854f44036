package primitives

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/runtime"
)

func call(t *testing.T, env *runtime.Environment, name string, args ...runtime.Value) runtime.Value {
	t.Helper()
	v, err := env.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	fn, ok := v.(runtime.Callable)
	if !ok {
		t.Fatalf("%s is not callable", name)
	}
	result, err := runtime.Apply(fn, args)
	if err != nil {
		t.Fatalf("%s%v: %v", name, args, err)
	}
	return result
}

func TestListPrimitives(t *testing.T) {
	env := runtime.NewEnvironment()
	Install(env)

	l := runtime.List{Elements: []runtime.Value{
		runtime.Number{Val: 1}, runtime.Number{Val: 2}, runtime.Number{Val: 3},
	}}

	if got := call(t, env, "list-length", l); got.String() != "3" {
		t.Errorf("list-length = %s, want 3", got.String())
	}
	if got := call(t, env, "list-ref", l, runtime.Number{Val: 1}); got.String() != "2" {
		t.Errorf("list-ref = %s, want 2", got.String())
	}
	if got := call(t, env, "list-empty?", runtime.List{}); got.String() != "true" {
		t.Errorf("list-empty? on empty list = %s, want true", got.String())
	}

	appended := call(t, env, "list-append", l, l)
	if appended.(runtime.List).Elements[0].String() != "1" || len(appended.(runtime.List).Elements) != 6 {
		t.Errorf("list-append produced %v", appended)
	}
}

func TestStringPrimitives(t *testing.T) {
	env := runtime.NewEnvironment()
	Install(env)

	if got := call(t, env, "str-concat", runtime.String{Val: "foo"}, runtime.String{Val: "bar"}); got.String() != "foobar" {
		t.Errorf("str-concat = %s, want foobar", got.String())
	}
	if got := call(t, env, "str-upcase", runtime.String{Val: "abc"}); got.String() != "ABC" {
		t.Errorf("str-upcase = %s, want ABC", got.String())
	}
	if got := call(t, env, "str-length", runtime.String{Val: "hello"}); got.String() != "5" {
		t.Errorf("str-length = %s, want 5", got.String())
	}
}

func TestRandomPrimitivesAreMarkedCached(t *testing.T) {
	env := runtime.NewEnvironment()
	Install(env)

	for _, name := range []string{"random", "random-int", "http-get"} {
		v, err := env.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		fn := v.(runtime.Callable)
		if !fn.MustBeCached() {
			t.Errorf("%s should be marked MustBeCached so replay reproduces its value", name)
		}
	}
}

func TestRandomIntRange(t *testing.T) {
	env := runtime.NewEnvironment()
	Install(env)

	for i := 0; i < 20; i++ {
		got := call(t, env, "random-int", runtime.Number{Val: 5}, runtime.Number{Val: 8})
		n := got.(runtime.Number).Val
		if n < 5 || n >= 8 {
			t.Fatalf("random-int(5, 8) = %v, want in [5, 8)", n)
		}
	}
}
