package eval

import (
	"github.com/cwbudde/go-botlang/internal/ast"
	"github.com/cwbudde/go-botlang/internal/boterr"
	"github.com/cwbudde/go-botlang/internal/runtime"
)

// evalModuleDefinition evaluates the module's body into a fresh child
// environment, collects every ModuleFunctionExport it encounters, and
// defines the resulting Module into the enclosing environment under the
// module's name.
func (e *Evaluator) evalModuleDefinition(n *ast.ModuleDefinition, env *runtime.Environment) (runtime.Value, error) {
	moduleEnv := runtime.NewEnclosedEnvironment(env)
	exports := make(map[string]runtime.Value)

	for _, stmt := range n.Body {
		if exp, ok := stmt.(*ast.ModuleFunctionExport); ok {
			for _, id := range exp.Ids {
				v, err := moduleEnv.Lookup(id)
				if err != nil {
					return nil, e.fail(boterr.UnboundIdentifier, err.Error(), exp.CodeRef())
				}
				exports[id] = v
			}
			continue
		}
		if _, err := e.Eval(stmt, moduleEnv); err != nil {
			return nil, err
		}
	}

	mod := &runtime.Module{Name: n.Name, Exports: exports}
	env.Update(n.Name, mod)
	return mod, nil
}

// evalModuleImport resolves ModuleName to a previously defined Module and
// binds its exports (filtered to Only, when given) into env.
func (e *Evaluator) evalModuleImport(n *ast.ModuleImport, env *runtime.Environment) (runtime.Value, error) {
	v, err := env.Lookup(n.ModuleName)
	if err != nil {
		return nil, e.fail(boterr.UnboundIdentifier, err.Error(), n.CodeRef())
	}
	mod, ok := v.(*runtime.Module)
	if !ok {
		return nil, e.fail(boterr.NotAFunction, n.ModuleName+" is not a module", n.CodeRef())
	}

	if len(n.Only) == 0 {
		for name, val := range mod.Exports {
			env.Update(name, val)
		}
		return runtime.Nil, nil
	}

	for _, name := range n.Only {
		val, ok := mod.Exports[name]
		if !ok {
			return nil, e.fail(boterr.UnboundIdentifier, name+" is not exported by "+n.ModuleName, n.CodeRef())
		}
		env.Update(name, val)
	}
	return runtime.Nil, nil
}
