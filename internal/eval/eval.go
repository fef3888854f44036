// Package eval implements the Botlang evaluator: a single type-switch
// dispatch over internal/ast's node variants (spec.md's Design Notes reject
// a double-dispatch Visitor for evaluation itself — a switch is the natural
// fit in a statically typed systems language, and it is what lets the
// evaluator hold state the Visitor interface has no room for: the
// primitive-result cache, its replay cursor, and the bot-node step count
// that make suspended evaluation resumable).
package eval

import (
	"github.com/cwbudde/go-botlang/internal/ast"
	"github.com/cwbudde/go-botlang/internal/boterr"
	"github.com/cwbudde/go-botlang/internal/coderef"
	"github.com/cwbudde/go-botlang/internal/runtime"
)

// Evaluator walks an AST and produces runtime values. Its fields exactly
// mirror the ExecutionState it was built from (spec.md §3.3): primitive
// results already computed for this run, a cursor into them, how many
// bot-result steps to silently walk through before actually suspending
// again, and how many have been walked through so far. A fresh Evaluator
// with no ExecutionState behaves like primitiveStep == len(primitiveValues)
// and botNodeStepsToSkip == 0: every primitive call computes and caches,
// and the very first BotResult suspends.
type Evaluator struct {
	primitiveValues    []runtime.Value
	primitiveStep      int
	botNodeStepsToSkip int
	botNodeStep        int
	stack              []frame
}

type frame struct {
	kind string
	ref  *coderef.Reference
}

// NewEvaluator builds an Evaluator seeded from state. A nil state starts a
// fresh evaluation with an empty primitive cache and no bot-result steps to
// skip.
func NewEvaluator(state *runtime.ExecutionState) *Evaluator {
	e := &Evaluator{}
	if state != nil {
		e.primitiveValues = append([]runtime.Value(nil), state.PrimitiveValues...)
		e.botNodeStepsToSkip = state.BotNodeSteps
	}
	return e
}

func (e *Evaluator) pushFrame(kind string, ref *coderef.Reference) {
	e.stack = append(e.stack, frame{kind: kind, ref: ref})
}

func (e *Evaluator) popFrame() {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *Evaluator) trace() []boterr.TraceFrame {
	frames := make([]boterr.TraceFrame, len(e.stack))
	for i, f := range e.stack {
		frames[i] = boterr.TraceFrame{NodeKind: f.kind, CodeRef: f.ref}
	}
	return frames
}

func (e *Evaluator) fail(kind boterr.Kind, message string, ref *coderef.Reference) error {
	return boterr.New(kind, message, ref).WithTrace(e.trace())
}

// Eval is the evaluator's single entry point, dispatching on node's
// dynamic type.
func (e *Evaluator) Eval(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Value:
		return literalToValue(n.Literal), nil

	case *ast.ListLiteral:
		elems := make([]runtime.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return runtime.List{Elements: elems}, nil

	case *ast.If:
		e.pushFrame("If", n.CodeRef())
		defer e.popFrame()
		cond, err := e.Eval(n.Cond, env)
		if err != nil {
			return nil, err
		}
		if runtime.IsTruthy(cond) {
			return e.Eval(n.Then, env)
		}
		return e.Eval(n.Else, env)

	case *ast.Cond:
		return e.evalCond(n, env)

	case *ast.And:
		left, err := e.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean{Val: runtime.IsTruthy(left) && runtime.IsTruthy(right)}, nil

	case *ast.Or:
		left, err := e.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean{Val: runtime.IsTruthy(left) || runtime.IsTruthy(right)}, nil

	case *ast.Id:
		v, err := env.Lookup(n.Name)
		if err != nil {
			return nil, e.fail(boterr.UnboundIdentifier, err.Error(), n.CodeRef())
		}
		return v, nil

	case *ast.Fun:
		return runtime.NewClosure(n, env, e), nil

	case *ast.App:
		return e.evalApp(n, env)

	case *ast.BodySequence:
		return e.EvalBody(n, env)

	case *ast.Definition:
		e.pushFrame("Definition", n.CodeRef())
		defer e.popFrame()
		env.Update(n.Name, runtime.Nil)
		val, err := e.Eval(n.Expr, env)
		if err != nil {
			return nil, err
		}
		env.Update(n.Name, val)
		return runtime.Nil, nil

	case *ast.Local:
		childEnv := runtime.NewEnclosedEnvironment(env)
		for _, def := range n.Defs {
			if _, err := e.Eval(def, childEnv); err != nil {
				return nil, err
			}
		}
		return e.EvalBody(n.Body, childEnv)

	case *ast.ModuleDefinition:
		return e.evalModuleDefinition(n, env)

	case *ast.ModuleImport:
		return e.evalModuleImport(n, env)

	case *ast.BotNode:
		return runtime.NewBotNodeValue(n, env, e), nil

	case *ast.BotResult:
		return e.evalBotResult(n, env)

	case *ast.DefineSyntax:
		// A macro definition nested inside another form stays in the
		// expanded tree; it has no evaluation effect.
		return runtime.Nil, nil

	default:
		return nil, e.fail(boterr.PrimitiveFailure, "unsupported node kind: "+node.Kind(), node.CodeRef())
	}
}

// EvalBody evaluates every expression in body for effect, returning the
// last one's value. An empty body evaluates to Nil.
func (e *Evaluator) EvalBody(body *ast.BodySequence, env *runtime.Environment) (runtime.Value, error) {
	if len(body.Exprs) == 0 {
		return runtime.Nil, nil
	}
	var result runtime.Value = runtime.Nil
	for _, expr := range body.Exprs {
		v, err := e.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func literalToValue(lit ast.Literal) runtime.Value {
	switch lit.Kind {
	case ast.LiteralNumber:
		return runtime.Number{Val: lit.Num}
	case ast.LiteralBoolean:
		return runtime.Boolean{Val: lit.Bool}
	case ast.LiteralString:
		return runtime.String{Val: lit.Str}
	case ast.LiteralSymbol:
		return runtime.Symbol{Name: lit.Str}
	default:
		return runtime.Nil
	}
}

func (e *Evaluator) evalCond(n *ast.Cond, env *runtime.Environment) (runtime.Value, error) {
	for _, clause := range n.Clauses {
		switch c := clause.(type) {
		case *ast.CondPredicateClause:
			pred, err := e.Eval(c.Predicate, env)
			if err != nil {
				return nil, err
			}
			if runtime.IsTruthy(pred) {
				return e.Eval(c.Body, env)
			}
		case *ast.CondElseClause:
			return e.Eval(c.Body, env)
		}
	}
	return nil, e.fail(boterr.NoMatchingCondClause, "no cond clause matched", n.CodeRef())
}

func (e *Evaluator) evalApp(n *ast.App, env *runtime.Environment) (runtime.Value, error) {
	e.pushFrame("App", n.CodeRef())
	defer e.popFrame()

	calleeVal, err := e.Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(runtime.Callable)
	if !ok {
		return nil, e.fail(boterr.NotAFunction, "value is not callable", n.CodeRef())
	}

	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if !fn.MustBeCached() {
		return e.apply(fn, args, n.CodeRef())
	}

	if e.primitiveStep == len(e.primitiveValues) {
		result, err := e.apply(fn, args, n.CodeRef())
		if err != nil {
			return nil, err
		}
		e.primitiveValues = append(e.primitiveValues, result)
		e.primitiveStep++
		return result, nil
	}

	result := e.primitiveValues[e.primitiveStep]
	e.primitiveStep++
	return result, nil
}

func (e *Evaluator) apply(fn runtime.Callable, args []runtime.Value, ref *coderef.Reference) (runtime.Value, error) {
	v, err := runtime.Apply(fn, args)
	if err != nil {
		if _, ok := err.(*boterr.EvaluationError); ok {
			return nil, err
		}
		if ae, ok := err.(*runtime.ArityError); ok {
			return nil, e.fail(boterr.ArityMismatch, ae.Error(), ref)
		}
		return nil, e.fail(boterr.PrimitiveFailure, err.Error(), ref)
	}
	return v, nil
}

func (e *Evaluator) evalBotResult(n *ast.BotResult, env *runtime.Environment) (runtime.Value, error) {
	data, err := e.Eval(n.Data, env)
	if err != nil {
		return nil, err
	}
	message, err := e.Eval(n.Message, env)
	if err != nil {
		return nil, err
	}
	nextNodeVal, err := e.Eval(n.NextNode, env)
	if err != nil {
		return nil, err
	}

	e.botNodeStep++

	if e.botNodeStep <= e.botNodeStepsToSkip {
		next, ok := nextNodeVal.(runtime.Callable)
		if !ok {
			return nil, e.fail(boterr.NotAFunction, "bot-result next-node is not callable", n.CodeRef())
		}
		return e.apply(next, []runtime.Value{data}, n.CodeRef())
	}

	state := &runtime.ExecutionState{
		PrimitiveValues: append([]runtime.Value(nil), e.primitiveValues...),
		BotNodeSteps:    e.botNodeStep,
	}
	return &runtime.BotResultValue{Data: data, Message: message, NextNode: nextNodeVal, State: state}, nil
}
