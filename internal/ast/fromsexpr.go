package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-botlang/internal/sexpr"
)

// nodeFromSExpr recognizes the special forms of the surface syntax and
// converts everything else into an App (function application). This mirrors
// the reader/to_ast split of the source implementation: sexpr carries no
// notion of "special form" at all, every keyword is resolved here.
func nodeFromSExpr(s sexpr.SExpr) (Node, error) {
	var n Node
	var err error
	switch t := s.(type) {
	case *sexpr.Atom:
		n, err = atomToNode(t)
	case *sexpr.Compound:
		n, err = compoundToNode(t)
	default:
		return nil, fmt.Errorf("ast: unrecognized s-expression type %T", s)
	}
	if err != nil {
		return nil, err
	}
	// Every node remembers the exact s-expression it came from, so the
	// macro expander can splice a caller's argument back into a template
	// as source syntax rather than a re-synthesized tree (internal/macro).
	n.SetRawSExpr(s)
	return n, nil
}

func atomToNode(a *sexpr.Atom) (Node, error) {
	tok := a.Token
	switch {
	case tok == "true":
		return (&Value{Literal: BooleanLiteral(true)}).WithCodeReference(a.Ref()), nil
	case tok == "false":
		return (&Value{Literal: BooleanLiteral(false)}).WithCodeReference(a.Ref()), nil
	case tok == "nil":
		return (&Value{Literal: NilLiteral()}).WithCodeReference(a.Ref()), nil
	case len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`):
		return (&Value{Literal: StringLiteral(tok[1 : len(tok)-1])}).WithCodeReference(a.Ref()), nil
	default:
		if num, err := strconv.ParseFloat(tok, 64); err == nil {
			return (&Value{Literal: NumberLiteral(num)}).WithCodeReference(a.Ref()), nil
		}
		return (&Id{Name: tok}).WithCodeReference(a.Ref()), nil
	}
}

func compoundToNode(c *sexpr.Compound) (Node, error) {
	if len(c.Children) == 0 {
		return (&ListLiteral{}).WithCodeReference(c.Ref()), nil
	}

	head, isHeadAtom := c.Children[0].(*sexpr.Atom)
	if isHeadAtom {
		if builder, ok := specialForms[head.Token]; ok {
			return builder(c)
		}
	}

	callee, err := nodeFromSExpr(c.Children[0])
	if err != nil {
		return nil, err
	}
	args, err := nodesFromSExprs(c.Children[1:])
	if err != nil {
		return nil, err
	}
	return (&App{Callee: callee, Args: args}).WithCodeReference(c.Ref()), nil
}

type formBuilder func(*sexpr.Compound) (Node, error)

var specialForms map[string]formBuilder

func init() {
	specialForms = map[string]formBuilder{
		"list":              buildListLiteral,
		"if":                buildIf,
		"cond":              buildCond,
		"and":               buildAnd,
		"or":                buildOr,
		"fun":               buildFun,
		"begin":             buildBegin,
		"define":            buildDefinition,
		"local":             buildLocal,
		"module":            buildModuleDefinition,
		"export":            buildModuleFunctionExport,
		"import":            buildModuleImport,
		"bot-node":          buildBotNode,
		"bot-result":        buildBotResult,
		"define-syntax-rule": buildDefineSyntax,
	}
}

func nodesFromSExprs(exprs []sexpr.SExpr) ([]Node, error) {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		n, err := nodeFromSExpr(e)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

func buildListLiteral(c *sexpr.Compound) (Node, error) {
	elems, err := nodesFromSExprs(c.Children[1:])
	if err != nil {
		return nil, err
	}
	return (&ListLiteral{Elements: elems}).WithCodeReference(c.Ref()), nil
}

func buildIf(c *sexpr.Compound) (Node, error) {
	if len(c.Children) != 4 {
		return nil, fmt.Errorf("ast: if requires exactly 3 arguments, got %d", len(c.Children)-1)
	}
	cond, err := nodeFromSExpr(c.Children[1])
	if err != nil {
		return nil, err
	}
	then, err := nodeFromSExpr(c.Children[2])
	if err != nil {
		return nil, err
	}
	els, err := nodeFromSExpr(c.Children[3])
	if err != nil {
		return nil, err
	}
	return (&If{Cond: cond, Then: then, Else: els}).WithCodeReference(c.Ref()), nil
}

func buildCond(c *sexpr.Compound) (Node, error) {
	clauses := make([]CondClause, 0, len(c.Children)-1)
	for i, child := range c.Children[1:] {
		clauseCompound, ok := child.(*sexpr.Compound)
		if !ok || len(clauseCompound.Children) < 2 {
			return nil, fmt.Errorf("ast: malformed cond clause at position %d", i)
		}
		headAtom, ok := clauseCompound.Children[0].(*sexpr.Atom)
		bodyExprs, err := nodesFromSExprs(clauseCompound.Children[1:])
		if err != nil {
			return nil, err
		}
		body := nodeFromBodyExprs(bodyExprs)
		if ok && headAtom.Token == "else" {
			if i != len(c.Children)-2 {
				return nil, fmt.Errorf("ast: else must be the last cond clause")
			}
			clauses = append(clauses, (&CondElseClause{Body: body}).WithCodeReference(clauseCompound.Ref()).(*CondElseClause))
			continue
		}
		pred, err := nodeFromSExpr(clauseCompound.Children[0])
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, (&CondPredicateClause{Predicate: pred, Body: body}).WithCodeReference(clauseCompound.Ref()).(*CondPredicateClause))
	}
	return (&Cond{Clauses: clauses}).WithCodeReference(c.Ref()), nil
}

func nodeFromBodyExprs(exprs []Node) Node {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &BodySequence{Exprs: exprs}
}

func buildAnd(c *sexpr.Compound) (Node, error) {
	if len(c.Children) != 3 {
		return nil, fmt.Errorf("ast: and requires exactly 2 arguments, got %d", len(c.Children)-1)
	}
	left, err := nodeFromSExpr(c.Children[1])
	if err != nil {
		return nil, err
	}
	right, err := nodeFromSExpr(c.Children[2])
	if err != nil {
		return nil, err
	}
	return (&And{Left: left, Right: right}).WithCodeReference(c.Ref()), nil
}

func buildOr(c *sexpr.Compound) (Node, error) {
	if len(c.Children) != 3 {
		return nil, fmt.Errorf("ast: or requires exactly 2 arguments, got %d", len(c.Children)-1)
	}
	left, err := nodeFromSExpr(c.Children[1])
	if err != nil {
		return nil, err
	}
	right, err := nodeFromSExpr(c.Children[2])
	if err != nil {
		return nil, err
	}
	return (&Or{Left: left, Right: right}).WithCodeReference(c.Ref()), nil
}

func paramNames(s sexpr.SExpr) ([]string, error) {
	compound, ok := s.(*sexpr.Compound)
	if !ok {
		return nil, fmt.Errorf("ast: parameter list must be a parenthesized form")
	}
	names := make([]string, len(compound.Children))
	for i, child := range compound.Children {
		atom, ok := child.(*sexpr.Atom)
		if !ok {
			return nil, fmt.Errorf("ast: parameter %d is not an identifier", i)
		}
		names[i] = atom.Token
	}
	return names, nil
}

func buildFun(c *sexpr.Compound) (Node, error) {
	if len(c.Children) < 3 {
		return nil, fmt.Errorf("ast: fun requires a parameter list and a body")
	}
	params, err := paramNames(c.Children[1])
	if err != nil {
		return nil, err
	}
	body, err := nodesFromSExprs(c.Children[2:])
	if err != nil {
		return nil, err
	}
	return (&Fun{Params: params, Body: &BodySequence{Exprs: body}}).WithCodeReference(c.Ref()), nil
}

func buildBegin(c *sexpr.Compound) (Node, error) {
	exprs, err := nodesFromSExprs(c.Children[1:])
	if err != nil {
		return nil, err
	}
	return (&BodySequence{Exprs: exprs}).WithCodeReference(c.Ref()), nil
}

func buildDefinition(c *sexpr.Compound) (Node, error) {
	if len(c.Children) != 3 {
		return nil, fmt.Errorf("ast: define requires exactly a name and an expression")
	}
	nameAtom, ok := c.Children[1].(*sexpr.Atom)
	if !ok {
		return nil, fmt.Errorf("ast: define's first argument must be an identifier")
	}
	expr, err := nodeFromSExpr(c.Children[2])
	if err != nil {
		return nil, err
	}
	return (&Definition{Name: nameAtom.Token, Expr: expr}).WithCodeReference(c.Ref()), nil
}

func buildLocal(c *sexpr.Compound) (Node, error) {
	if len(c.Children) < 3 {
		return nil, fmt.Errorf("ast: local requires a definition list and a body")
	}
	defsCompound, ok := c.Children[1].(*sexpr.Compound)
	if !ok {
		return nil, fmt.Errorf("ast: local's first argument must be a list of definitions")
	}
	defs := make([]*Definition, len(defsCompound.Children))
	for i, d := range defsCompound.Children {
		dc, ok := d.(*sexpr.Compound)
		if !ok {
			return nil, fmt.Errorf("ast: malformed local definition at position %d", i)
		}
		def, err := buildDefinition(dc)
		if err != nil {
			return nil, err
		}
		defs[i] = def.(*Definition)
	}
	body, err := nodesFromSExprs(c.Children[2:])
	if err != nil {
		return nil, err
	}
	return (&Local{Defs: defs, Body: &BodySequence{Exprs: body}}).WithCodeReference(c.Ref()), nil
}

func buildModuleDefinition(c *sexpr.Compound) (Node, error) {
	if len(c.Children) < 2 {
		return nil, fmt.Errorf("ast: module requires a name")
	}
	nameAtom, ok := c.Children[1].(*sexpr.Atom)
	if !ok {
		return nil, fmt.Errorf("ast: module's first argument must be an identifier")
	}
	body, err := nodesFromSExprs(c.Children[2:])
	if err != nil {
		return nil, err
	}
	return (&ModuleDefinition{Name: nameAtom.Token, Body: body}).WithCodeReference(c.Ref()), nil
}

func buildModuleFunctionExport(c *sexpr.Compound) (Node, error) {
	if len(c.Children) < 2 {
		return nil, fmt.Errorf("ast: export requires at least one identifier")
	}
	ids := make([]string, len(c.Children)-1)
	for i, child := range c.Children[1:] {
		idAtom, ok := child.(*sexpr.Atom)
		if !ok {
			return nil, fmt.Errorf("ast: export entry %d is not an identifier", i)
		}
		ids[i] = idAtom.Token
	}
	return (&ModuleFunctionExport{Ids: ids}).WithCodeReference(c.Ref()), nil
}

func buildModuleImport(c *sexpr.Compound) (Node, error) {
	if len(c.Children) < 2 {
		return nil, fmt.Errorf("ast: import requires a module name")
	}
	nameAtom, ok := c.Children[1].(*sexpr.Atom)
	if !ok {
		return nil, fmt.Errorf("ast: import's first argument must be an identifier")
	}
	var only []string
	if len(c.Children) == 3 {
		onlyCompound, ok := c.Children[2].(*sexpr.Compound)
		if !ok {
			return nil, fmt.Errorf("ast: import's filter must be a list of identifiers")
		}
		only = make([]string, len(onlyCompound.Children))
		for i, o := range onlyCompound.Children {
			oa, ok := o.(*sexpr.Atom)
			if !ok {
				return nil, fmt.Errorf("ast: import filter entry %d is not an identifier", i)
			}
			only[i] = oa.Token
		}
	}
	return (&ModuleImport{ModuleName: nameAtom.Token, Only: only}).WithCodeReference(c.Ref()), nil
}

func buildBotNode(c *sexpr.Compound) (Node, error) {
	if len(c.Children) < 3 {
		return nil, fmt.Errorf("ast: bot-node requires a parameter list and a body")
	}
	params, err := paramNames(c.Children[1])
	if err != nil {
		return nil, err
	}
	body, err := nodesFromSExprs(c.Children[2:])
	if err != nil {
		return nil, err
	}
	return (&BotNode{Params: params, Body: &BodySequence{Exprs: body}}).WithCodeReference(c.Ref()), nil
}

func buildBotResult(c *sexpr.Compound) (Node, error) {
	if len(c.Children) != 4 {
		return nil, fmt.Errorf("ast: bot-result requires exactly data, message and next-node")
	}
	data, err := nodeFromSExpr(c.Children[1])
	if err != nil {
		return nil, err
	}
	message, err := nodeFromSExpr(c.Children[2])
	if err != nil {
		return nil, err
	}
	next, err := nodeFromSExpr(c.Children[3])
	if err != nil {
		return nil, err
	}
	return (&BotResult{Data: data, Message: message, NextNode: next}).WithCodeReference(c.Ref()), nil
}

func buildDefineSyntax(c *sexpr.Compound) (Node, error) {
	if len(c.Children) != 3 {
		return nil, fmt.Errorf("ast: define-syntax-rule requires exactly a pattern and a template")
	}
	patternCompound, ok := c.Children[1].(*sexpr.Compound)
	if !ok || len(patternCompound.Children) == 0 {
		return nil, fmt.Errorf("ast: define-syntax-rule's pattern must be a non-empty list")
	}
	identifier, ok := patternCompound.Children[0].(*sexpr.Atom)
	if !ok {
		return nil, fmt.Errorf("ast: define-syntax-rule's pattern name must be an identifier")
	}
	args := make([]*sexpr.Atom, len(patternCompound.Children)-1)
	for i, a := range patternCompound.Children[1:] {
		atom, ok := a.(*sexpr.Atom)
		if !ok {
			return nil, fmt.Errorf("ast: define-syntax-rule pattern argument %d is not an identifier", i)
		}
		args[i] = atom
	}
	pattern := &SyntaxPattern{Identifier: identifier, Arguments: args}
	return (&DefineSyntax{Pattern: pattern, Template: c.Children[2]}).WithCodeReference(c.Ref()), nil
}
