package ast

import "github.com/cwbudde/go-botlang/internal/coderef"

// ModuleDefinition wraps a body of top-level definitions under a module
// name, establishing the namespace that ModuleFunctionExport publishes from
// and ModuleImport pulls into a caller's environment.
type ModuleDefinition struct {
	base
	Name string
	Body []Node
}

func NewModuleDefinition(name string, body []Node) *ModuleDefinition {
	return &ModuleDefinition{Name: name, Body: body}
}

func (n *ModuleDefinition) Kind() string { return "ModuleDefinition" }

func (n *ModuleDefinition) DeepCopy() Node {
	body := make([]Node, len(n.Body))
	for i, b := range n.Body {
		body[i] = b.DeepCopy()
	}
	return (&ModuleDefinition{Name: n.Name, Body: body}).withRef(n.ref)
}

func (n *ModuleDefinition) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *ModuleDefinition) withRef(ref *coderef.Reference) *ModuleDefinition {
	n.ref = ref
	return n
}
func (n *ModuleDefinition) Accept(v Visitor, menv *MacroEnv) Node {
	return v.VisitModuleDefinition(n, menv)
}

// ModuleFunctionExport names a set of bindings inside the enclosing
// ModuleDefinition that become visible to importers.
type ModuleFunctionExport struct {
	base
	Ids []string
}

func NewModuleFunctionExport(ids []string) *ModuleFunctionExport {
	return &ModuleFunctionExport{Ids: ids}
}

func (n *ModuleFunctionExport) Kind() string { return "ModuleFunctionExport" }

func (n *ModuleFunctionExport) DeepCopy() Node {
	ids := append([]string(nil), n.Ids...)
	return (&ModuleFunctionExport{Ids: ids}).withRef(n.ref)
}

func (n *ModuleFunctionExport) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *ModuleFunctionExport) withRef(ref *coderef.Reference) *ModuleFunctionExport {
	n.ref = ref
	return n
}
func (n *ModuleFunctionExport) Accept(v Visitor, menv *MacroEnv) Node {
	return v.VisitModuleFunctionExport(n, menv)
}

// ModuleImport binds a previously defined module's exports into the current
// environment, either in full or filtered to Only.
type ModuleImport struct {
	base
	ModuleName string
	Only       []string
}

func NewModuleImport(moduleName string, only []string) *ModuleImport {
	return &ModuleImport{ModuleName: moduleName, Only: only}
}

func (n *ModuleImport) Kind() string { return "ModuleImport" }

func (n *ModuleImport) DeepCopy() Node {
	only := append([]string(nil), n.Only...)
	return (&ModuleImport{ModuleName: n.ModuleName, Only: only}).withRef(n.ref)
}

func (n *ModuleImport) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *ModuleImport) withRef(ref *coderef.Reference) *ModuleImport  { n.ref = ref; return n }
func (n *ModuleImport) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitModuleImport(n, menv) }
