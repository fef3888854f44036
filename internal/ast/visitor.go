package ast

// RebuildVisitor is the default "recurse into children, rebuild" traversal.
// Embed it in a visitor that only cares about a handful of variants (the
// macro expander overrides VisitApp and VisitDefineSyntax; an identifier
// collector overrides only VisitId) and every other node keeps working
// without having to restate its recursion.
type RebuildVisitor struct {
	// Self must be set to the embedding visitor so that recursion into
	// children dispatches through the overridden methods. Left nil, a
	// RebuildVisitor recurses into itself, which is only correct for a
	// pass that overrides nothing.
	Self Visitor
}

func (r *RebuildVisitor) self() Visitor {
	if r.Self != nil {
		return r.Self
	}
	return r
}

func (r *RebuildVisitor) VisitValue(n *Value, menv *MacroEnv) Node { return n }

func (r *RebuildVisitor) VisitListLiteral(n *ListLiteral, menv *MacroEnv) Node {
	elems := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = e.Accept(r.self(), menv)
	}
	return (&ListLiteral{Elements: elems}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitIf(n *If, menv *MacroEnv) Node {
	return (&If{
		Cond: n.Cond.Accept(r.self(), menv),
		Then: n.Then.Accept(r.self(), menv),
		Else: n.Else.Accept(r.self(), menv),
	}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitCond(n *Cond, menv *MacroEnv) Node {
	clauses := make([]CondClause, len(n.Clauses))
	for i, c := range n.Clauses {
		clauses[i] = c.Accept(r.self(), menv).(CondClause)
	}
	return (&Cond{Clauses: clauses}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitCondPredicateClause(n *CondPredicateClause, menv *MacroEnv) Node {
	return (&CondPredicateClause{
		Predicate: n.Predicate.Accept(r.self(), menv),
		Body:      n.Body.Accept(r.self(), menv),
	}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitCondElseClause(n *CondElseClause, menv *MacroEnv) Node {
	return (&CondElseClause{Body: n.Body.Accept(r.self(), menv)}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitAnd(n *And, menv *MacroEnv) Node {
	return (&And{Left: n.Left.Accept(r.self(), menv), Right: n.Right.Accept(r.self(), menv)}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitOr(n *Or, menv *MacroEnv) Node {
	return (&Or{Left: n.Left.Accept(r.self(), menv), Right: n.Right.Accept(r.self(), menv)}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitId(n *Id, menv *MacroEnv) Node { return n }

func (r *RebuildVisitor) VisitFun(n *Fun, menv *MacroEnv) Node {
	params := append([]string(nil), n.Params...)
	return (&Fun{
		Params: params,
		Body:   n.Body.Accept(r.self(), menv).(*BodySequence),
	}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitApp(n *App, menv *MacroEnv) Node {
	args := make([]Node, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Accept(r.self(), menv)
	}
	return (&App{Callee: n.Callee.Accept(r.self(), menv), Args: args}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitBodySequence(n *BodySequence, menv *MacroEnv) Node {
	exprs := make([]Node, len(n.Exprs))
	for i, e := range n.Exprs {
		exprs[i] = e.Accept(r.self(), menv)
	}
	return (&BodySequence{Exprs: exprs}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitDefinition(n *Definition, menv *MacroEnv) Node {
	return (&Definition{Name: n.Name, Expr: n.Expr.Accept(r.self(), menv)}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitLocal(n *Local, menv *MacroEnv) Node {
	defs := make([]*Definition, len(n.Defs))
	for i, d := range n.Defs {
		defs[i] = d.Accept(r.self(), menv).(*Definition)
	}
	return (&Local{Defs: defs, Body: n.Body.Accept(r.self(), menv).(*BodySequence)}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitModuleDefinition(n *ModuleDefinition, menv *MacroEnv) Node {
	body := make([]Node, len(n.Body))
	for i, b := range n.Body {
		body[i] = b.Accept(r.self(), menv)
	}
	return (&ModuleDefinition{Name: n.Name, Body: body}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitModuleFunctionExport(n *ModuleFunctionExport, menv *MacroEnv) Node {
	return n
}

func (r *RebuildVisitor) VisitModuleImport(n *ModuleImport, menv *MacroEnv) Node { return n }

func (r *RebuildVisitor) VisitBotNode(n *BotNode, menv *MacroEnv) Node {
	params := append([]string(nil), n.Params...)
	return (&BotNode{
		Params: params,
		Body:   n.Body.Accept(r.self(), menv).(*BodySequence),
	}).withRef(n.ref)
}

func (r *RebuildVisitor) VisitBotResult(n *BotResult, menv *MacroEnv) Node {
	return (&BotResult{
		Data:     n.Data.Accept(r.self(), menv),
		Message:  n.Message.Accept(r.self(), menv),
		NextNode: n.NextNode.Accept(r.self(), menv),
	}).withRef(n.ref)
}

// VisitDefineSyntax is never reached by the macro expander's walk (the
// expander overrides VisitDefineSyntax itself), but is implemented for
// completeness of any other pass embedding RebuildVisitor.
func (r *RebuildVisitor) VisitDefineSyntax(n *DefineSyntax, menv *MacroEnv) Node { return n }
