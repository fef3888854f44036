package macro

import (
	"fmt"

	"github.com/cwbudde/go-botlang/internal/ast"
	"github.com/cwbudde/go-botlang/internal/sexpr"
)

// identifierFinder collects every Id a set of argument ASTs reference. The
// macro expander uses this to know which names in the macro's template
// would, left alone, accidentally capture (or be captured by) a name the
// caller's own arguments already use.
type identifierFinder struct {
	ast.RebuildVisitor
	ids map[string]bool
}

func newIdentifierFinder() *identifierFinder {
	f := &identifierFinder{ids: make(map[string]bool)}
	f.Self = f
	return f
}

func (f *identifierFinder) VisitId(n *ast.Id, menv *ast.MacroEnv) ast.Node {
	f.ids[n.Name] = true
	return n
}

func collectIdentifiers(args []ast.Node) map[string]bool {
	f := newIdentifierFinder()
	for _, a := range args {
		a.Accept(f, nil)
	}
	return f.ids
}

// hygienizer renames every atom in a macro template that collides with an
// identifier the caller's arguments already use, except the macro's own
// pattern parameters (those are deliberately meant to be replaced by the
// splicer afterwards, not renamed). Each colliding name is renamed
// consistently everywhere it recurs in the template.
type hygienizer struct {
	sexpr.RebuildVisitor
	existing map[string]bool
	mapping  map[string]string
}

func newHygienizer(existing map[string]bool) *hygienizer {
	h := &hygienizer{existing: existing, mapping: make(map[string]string)}
	h.Self = h
	return h
}

func (h *hygienizer) VisitAtom(a *sexpr.Atom) sexpr.SExpr {
	if !h.existing[a.Token] {
		return a
	}
	renamed, ok := h.mapping[a.Token]
	if !ok {
		renamed = h.freshName(a.Token)
		h.mapping[a.Token] = renamed
	}
	return sexpr.NewAtom(renamed).WithRef(a.Ref())
}

// freshName finds a suffix not already in use by the caller's identifiers,
// so the renamed binding cannot itself collide with something the caller
// referenced.
func (h *hygienizer) freshName(base string) string {
	counter := 1
	candidate := fmt.Sprintf("%s_%d", base, counter)
	for h.existing[candidate] {
		counter++
		candidate = fmt.Sprintf("%s_%d", base, counter)
	}
	return candidate
}

// splicer replaces every atom matching a macro's pattern parameter with a
// fresh copy of the caller's raw S-expression for that argument. This runs
// after hygienization so the substituted caller syntax is never itself
// mistaken for a template-introduced binding.
type splicer struct {
	sexpr.RebuildVisitor
	mapping map[string]sexpr.SExpr
}

func newSplicer(mapping map[string]sexpr.SExpr) *splicer {
	s := &splicer{mapping: mapping}
	s.Self = s
	return s
}

func (s *splicer) VisitAtom(a *sexpr.Atom) sexpr.SExpr {
	if raw, ok := s.mapping[a.Token]; ok {
		return raw.DeepCopy()
	}
	return a
}
