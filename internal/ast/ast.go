// Package ast defines the Botlang abstract syntax tree: a closed sum of
// node variants, each deep-copyable and each carrying an optional source
// code reference for diagnostics. Evaluation itself lives in the eval
// package and dispatches on these types with a single type switch; the
// Visitor/Accept machinery defined here exists only to support the macro
// expander's rebuilding walk (internal/macro), per the node interface the
// teacher repo uses for its own AST (internal/ast.Node in go-dws).
package ast

import (
	"github.com/cwbudde/go-botlang/internal/coderef"
	"github.com/cwbudde/go-botlang/internal/sexpr"
)

// Node is the base interface every AST variant implements.
type Node interface {
	// DeepCopy returns an isomorphic, non-shared sub-tree. The code
	// reference may be shared between the original and the copy.
	DeepCopy() Node

	// WithCodeReference annotates the node and returns it, builder-style.
	WithCodeReference(ref *coderef.Reference) Node

	// CodeRef returns the attached source reference, or nil.
	CodeRef() *coderef.Reference

	// Accept dispatches to the visitor method matching this node's variant
	// and returns the (possibly rewritten) replacement. Used by the macro
	// expander only; the evaluator does not use this path.
	Accept(v Visitor, menv *MacroEnv) Node

	// Kind names the variant, used in execution-stack trace summaries.
	Kind() string

	// RawSExpr returns the raw S-expression this node was parsed from, if
	// any. The macro expander's hygienic splicing (internal/macro) needs
	// this: a macro argument is substituted into a template by copying the
	// caller's original S-expression, not by re-serializing the already
	// typed AST.
	RawSExpr() sexpr.SExpr

	// SetRawSExpr attaches the originating S-expression. Called once by
	// NodeFromSExpr; DeepCopy does not propagate it; a copy is never itself
	// a macro argument written back into source form.
	SetRawSExpr(s sexpr.SExpr)
}

// base is embedded by every concrete node to provide the code-reference and
// raw-S-expression bookkeeping all variants share.
type base struct {
	ref *coderef.Reference
	raw sexpr.SExpr
}

func (b *base) CodeRef() *coderef.Reference   { return b.ref }
func (b *base) RawSExpr() sexpr.SExpr         { return b.raw }
func (b *base) SetRawSExpr(s sexpr.SExpr)     { b.raw = s }

// MacroEnv is the macro environment of spec.md §4.3: a name -> DefineSyntax
// mapping distinct from the runtime environment, consulted only while
// expanding App nodes. Lookups delegate to the parent chain like a normal
// lexical scope.
type MacroEnv struct {
	bindings map[string]*DefineSyntax
	parent   *MacroEnv
}

// NewMacroEnv creates a root macro environment with no parent.
func NewMacroEnv() *MacroEnv {
	return &MacroEnv{bindings: make(map[string]*DefineSyntax)}
}

// NewChild creates a macro environment nested inside this one.
func (m *MacroEnv) NewChild() *MacroEnv {
	return &MacroEnv{bindings: make(map[string]*DefineSyntax), parent: m}
}

// Define registers a macro in the current scope.
func (m *MacroEnv) Define(name string, def *DefineSyntax) {
	m.bindings[name] = def
}

// Lookup searches this scope then its parents. It returns (nil, false) when
// the name is unbound, mirroring the Python implementation's use of a
// NameError to distinguish "not a macro" from "is a macro".
func (m *MacroEnv) Lookup(name string) (*DefineSyntax, bool) {
	for env := m; env != nil; env = env.parent {
		if def, ok := env.bindings[name]; ok {
			return def, true
		}
	}
	return nil, false
}

// Visitor is the rebuilding walk over the AST. Every non-App, non-
// DefineSyntax node's default behavior (recurse into children, rebuild) is
// provided by RebuildVisitor; embed it and override only what you need,
// exactly as the macro expander does.
type Visitor interface {
	VisitValue(*Value, *MacroEnv) Node
	VisitListLiteral(*ListLiteral, *MacroEnv) Node
	VisitIf(*If, *MacroEnv) Node
	VisitCond(*Cond, *MacroEnv) Node
	VisitCondPredicateClause(*CondPredicateClause, *MacroEnv) Node
	VisitCondElseClause(*CondElseClause, *MacroEnv) Node
	VisitAnd(*And, *MacroEnv) Node
	VisitOr(*Or, *MacroEnv) Node
	VisitId(*Id, *MacroEnv) Node
	VisitFun(*Fun, *MacroEnv) Node
	VisitApp(*App, *MacroEnv) Node
	VisitBodySequence(*BodySequence, *MacroEnv) Node
	VisitDefinition(*Definition, *MacroEnv) Node
	VisitLocal(*Local, *MacroEnv) Node
	VisitModuleDefinition(*ModuleDefinition, *MacroEnv) Node
	VisitModuleFunctionExport(*ModuleFunctionExport, *MacroEnv) Node
	VisitModuleImport(*ModuleImport, *MacroEnv) Node
	VisitBotNode(*BotNode, *MacroEnv) Node
	VisitBotResult(*BotResult, *MacroEnv) Node
	VisitDefineSyntax(*DefineSyntax, *MacroEnv) Node
}

// NodeFromSExpr converts a raw S-expression into its corresponding AST node.
// This is the "to_ast()" contract of spec.md §4.2, implemented as a
// package-level converter (rather than a method on sexpr.SExpr) so that
// internal/sexpr stays a leaf package with no dependency on internal/ast.
func NodeFromSExpr(s sexpr.SExpr) (Node, error) {
	return nodeFromSExpr(s)
}
