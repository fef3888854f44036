package runtime

import "github.com/cwbudde/go-botlang/internal/ast"

// Callable is implemented by every value that App can apply: closures,
// primitives, and bot nodes. MustBeCached distinguishes primitives whose
// result has to be recorded in an ExecutionState (side-effecting or
// nondeterministic calls like random or an HTTP fetch) from pure ones that
// can simply be re-run on replay.
type Callable interface {
	Value
	Arity() int
	MustBeCached() bool
}

// Closure is a Fun literal paired with the environment it closed over.
type Closure struct {
	Params []string
	Body   *ast.BodySequence
	Env    *Environment
	Eval   Evaluator
}

func NewClosure(fun *ast.Fun, env *Environment, eval Evaluator) *Closure {
	return &Closure{Params: fun.Params, Body: fun.Body, Env: env, Eval: eval}
}

func (*Closure) value()              {}
func (*Closure) Kind() string        { return "closure" }
func (*Closure) String() string      { return "#<closure>" }
func (c *Closure) Arity() int        { return len(c.Params) }
func (*Closure) MustBeCached() bool  { return false }

// Apply evaluates the closure's body in a fresh environment binding each
// parameter to its argument, enclosed over the closure's captured Env.
func (c *Closure) Apply(args []Value) (Value, error) {
	if len(args) != len(c.Params) {
		return nil, &ArityError{Expected: len(c.Params), Got: len(args)}
	}
	callEnv := NewEnclosedEnvironment(c.Env)
	for i, p := range c.Params {
		callEnv.Update(p, args[i])
	}
	return c.Eval.EvalBody(c.Body, callEnv)
}

// ArityError reports a parameter/argument count mismatch on a Callable
// application.
type ArityError struct {
	Expected, Got int
}

func (e *ArityError) Error() string {
	return "arity mismatch"
}

// PrimitiveFunc is the Go function backing a Primitive value.
type PrimitiveFunc func(args []Value) (Value, error)

// Primitive wraps a built-in function installed by internal/primitives.
// Cached primitives (e.g. random, HTTP fetch) record their result in the
// evaluator's ExecutionState so that replaying a suspended bot-node
// evaluation reproduces identical values instead of re-running the
// nondeterministic or side-effecting call.
type Primitive struct {
	Name    string
	ArityN  int
	Cached  bool
	Fn      PrimitiveFunc
}

func NewPrimitive(name string, arity int, cached bool, fn PrimitiveFunc) *Primitive {
	return &Primitive{Name: name, ArityN: arity, Cached: cached, Fn: fn}
}

func (*Primitive) value()             {}
func (*Primitive) Kind() string       { return "primitive" }
func (p *Primitive) String() string   { return "#<primitive:" + p.Name + ">" }
func (p *Primitive) Arity() int       { return p.ArityN }
func (p *Primitive) MustBeCached() bool { return p.Cached }

func (p *Primitive) Apply(args []Value) (Value, error) {
	if p.ArityN >= 0 && len(args) != p.ArityN {
		return nil, &ArityError{Expected: p.ArityN, Got: len(args)}
	}
	return p.Fn(args)
}

// Apply dispatches App evaluation to whichever Callable implementation fn
// is. It does not itself handle caching; that is the evaluator's job since
// only the evaluator has access to the ExecutionState cursor.
func Apply(fn Value, args []Value) (Value, error) {
	switch c := fn.(type) {
	case *Closure:
		return c.Apply(args)
	case *Primitive:
		return c.Apply(args)
	case *BotNodeValue:
		return c.Apply(args)
	default:
		return nil, &NotCallableError{Value: fn}
	}
}

// NotCallableError reports an App whose callee evaluated to a non-Callable
// value.
type NotCallableError struct {
	Value Value
}

func (e *NotCallableError) Error() string {
	return "value is not callable: " + e.Value.Kind()
}
