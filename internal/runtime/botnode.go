package runtime

import "github.com/cwbudde/go-botlang/internal/ast"

// BotNodeValue is a BotNode literal closed over its defining environment.
// Unlike a Closure, it is always called with exactly one input argument;
// the evaluator treats the terminal BotResult specially (walk-through
// replay vs. suspension), not this type.
type BotNodeValue struct {
	Params []string
	Body   *ast.BodySequence
	Env    *Environment
	Eval   Evaluator
}

func NewBotNodeValue(n *ast.BotNode, env *Environment, eval Evaluator) *BotNodeValue {
	return &BotNodeValue{Params: n.Params, Body: n.Body, Env: env, Eval: eval}
}

func (*BotNodeValue) value()             {}
func (*BotNodeValue) Kind() string       { return "bot-node" }
func (*BotNodeValue) String() string     { return "#<bot-node>" }
func (*BotNodeValue) Arity() int         { return 1 }
func (*BotNodeValue) MustBeCached() bool { return false }

// Apply takes a single input argument, bound to the first declared
// parameter. Any remaining declared parameters are not supplied by the
// caller: they are bound to the value already held for that name in the
// bot-node's captured environment, the stored context carried forward from
// wherever the node was defined.
func (b *BotNodeValue) Apply(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Expected: 1, Got: len(args)}
	}
	callEnv := NewEnclosedEnvironment(b.Env)
	if len(b.Params) > 0 {
		callEnv.Update(b.Params[0], args[0])
	}
	for _, p := range b.Params[1:] {
		v, err := b.Env.Lookup(p)
		if err != nil {
			return nil, err
		}
		callEnv.Update(p, v)
	}
	return b.Eval.EvalBody(b.Body, callEnv)
}

// ExecutionState is the serializable snapshot of a suspended bot-node
// evaluation: every cached primitive's recorded result, in call order, plus
// how many bot-result steps have already been walked through. Persisting
// this (internal/session) and feeding it back into a fresh Evaluator is
// what makes evaluation resumable across process restarts.
type ExecutionState struct {
	PrimitiveValues []Value
	BotNodeSteps    int
}

// NewExecutionState builds an empty state, the starting point of a fresh
// conversation.
func NewExecutionState() *ExecutionState {
	return &ExecutionState{}
}

// BotResultValue is what a bot-node evaluation returns when it suspends
// rather than walking straight through to the next node: the message to
// show, the data threaded through, the still-unapplied next node, and the
// state needed to resume.
type BotResultValue struct {
	Data     Value
	Message  Value
	NextNode Value
	State    *ExecutionState
}

func (*BotResultValue) value()      {}
func (*BotResultValue) Kind() string { return "bot-result" }
func (*BotResultValue) String() string {
	return "#<bot-result>"
}
