// Package runtime defines the values the evaluator produces and consumes,
// the environment they live in, and the execution-state snapshot that makes
// bot-node evaluation resumable. It deliberately does not import
// internal/eval: Closure and BotNodeValue hold an Evaluator reference
// instead of a concrete evaluator type, the same inversion the teacher
// repository uses to let its runtime values call back into the interpreter
// without a circular import.
package runtime

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-botlang/internal/ast"
)

// Value is the closed sum of runtime values a Botlang program can produce.
type Value interface {
	Kind() string
	String() string
	value()
}

// Evaluator is the minimal surface runtime needs from the evaluator to
// apply closures and bot nodes without importing internal/eval.
type Evaluator interface {
	Eval(node ast.Node, env *Environment) (Value, error)
	EvalBody(body *ast.BodySequence, env *Environment) (Value, error)
}

// Number is a Botlang numeric value, always a float64 internally.
type Number struct{ Val float64 }

func (Number) value()          {}
func (Number) Kind() string    { return "number" }
func (n Number) String() string { return trimFloat(n.Val) }

func trimFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	return s
}

// Boolean is a Botlang truth value.
type Boolean struct{ Val bool }

func (Boolean) value()           {}
func (Boolean) Kind() string     { return "boolean" }
func (b Boolean) String() string { return fmt.Sprintf("%v", b.Val) }

// String is a Botlang text value.
type String struct{ Val string }

func (String) value()           {}
func (String) Kind() string     { return "string" }
func (s String) String() string { return s.Val }

// Symbol is a name value, distinct from String. It is what a Value node
// holding an ast.SymbolLiteral evaluates to; the reader produces no such
// literal, since a bare name parses as an identifier.
type Symbol struct{ Name string }

func (Symbol) value()           {}
func (Symbol) Kind() string     { return "symbol" }
func (s Symbol) String() string { return s.Name }

// nilValue is the singleton absent value. Nil is its only instance.
type nilValue struct{}

func (nilValue) value()          {}
func (nilValue) Kind() string    { return "nil" }
func (nilValue) String() string  { return "nil" }

// Nil is Botlang's single absent-value instance.
var Nil Value = nilValue{}

// List is an ordered, immutable-by-convention sequence of values.
type List struct{ Elements []Value }

func (List) value()       {}
func (List) Kind() string { return "list" }
func (l List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "(list " + strings.Join(parts, " ") + ")"
}

// IsTruthy is Botlang's truthiness rule: only the boolean false and nil are
// falsy. 0 and "" are truthy like everything else.
func IsTruthy(v Value) bool {
	if v == Nil {
		return false
	}
	b, ok := v.(Boolean)
	return !ok || b.Val
}
