package ast

import "github.com/cwbudde/go-botlang/internal/coderef"

// BodySequence is an ordered list of expressions evaluated for effect, with
// the last expression's value used as the sequence's result.
type BodySequence struct {
	base
	Exprs []Node
}

func NewBodySequence(exprs ...Node) *BodySequence { return &BodySequence{Exprs: exprs} }

func (n *BodySequence) Kind() string { return "BodySequence" }

func (n *BodySequence) DeepCopy() Node {
	exprs := make([]Node, len(n.Exprs))
	for i, e := range n.Exprs {
		exprs[i] = e.DeepCopy()
	}
	return (&BodySequence{Exprs: exprs}).withRef(n.ref)
}

func (n *BodySequence) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *BodySequence) withRef(ref *coderef.Reference) *BodySequence  { n.ref = ref; return n }
func (n *BodySequence) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitBodySequence(n, menv) }

// Fun is an anonymous function literal: a parameter list plus a body.
// Evaluating it captures the current environment into a closure.
type Fun struct {
	base
	Params []string
	Body   *BodySequence
}

func NewFun(params []string, body *BodySequence) *Fun { return &Fun{Params: params, Body: body} }

func (n *Fun) Kind() string { return "Fun" }

func (n *Fun) DeepCopy() Node {
	params := append([]string(nil), n.Params...)
	return (&Fun{Params: params, Body: n.Body.DeepCopy().(*BodySequence)}).withRef(n.ref)
}

func (n *Fun) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *Fun) withRef(ref *coderef.Reference) *Fun           { n.ref = ref; return n }
func (n *Fun) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitFun(n, menv) }

// App is a function application: Callee evaluated, then every Arg evaluated
// left to right, then applied. App is the one node the macro expander
// inspects structurally rather than just recursing through, since a macro
// invocation is syntactically indistinguishable from a call until the
// callee is looked up in the macro environment.
type App struct {
	base
	Callee Node
	Args   []Node
}

func NewApp(callee Node, args ...Node) *App { return &App{Callee: callee, Args: args} }

func (n *App) Kind() string { return "App" }

func (n *App) DeepCopy() Node {
	args := make([]Node, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.DeepCopy()
	}
	return (&App{Callee: n.Callee.DeepCopy(), Args: args}).withRef(n.ref)
}

func (n *App) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *App) withRef(ref *coderef.Reference) *App           { n.ref = ref; return n }
func (n *App) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitApp(n, menv) }
