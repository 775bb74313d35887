package semantics

import (
	"fmt"

	"sealc/internal/semantics/table"
	"sealc/internal/symbols"
)

// Env holds the two namespaces of a compilation run.
//
// Functions is a single global scope, consulted only at call sites.
// Vars is the layered variable namespace: the global scope at the bottom,
// then the formal scope of the function being checked, then one scope per
// open block. Lookup on Vars therefore prefers locals, then formals, then
// globals.
type Env struct {
	Functions *table.Stack[*FunctionSignature]
	Vars      *table.Stack[*VariableBinding]
}

// NewEnv creates the namespaces for one run, with the print primitive
// preinstalled in the function namespace.
func NewEnv() *Env {
	env := &Env{
		Functions: table.New[*FunctionSignature](),
		Vars:      table.New[*VariableBinding](),
	}
	env.Functions.Push(table.ScopeFunction)
	env.Vars.Push(table.ScopeGlobal)

	err := env.Functions.Declare(symbols.Print, &FunctionSignature{
		Name:       symbols.Print,
		ReturnType: symbols.Void,
	})
	if err != nil {
		panic(fmt.Sprintf("semantics: preinstalling %s: %v", symbols.Print, err))
	}
	return env
}

// Function returns the signature registered for name.
func (e *Env) Function(name *symbols.Symbol) (*FunctionSignature, bool) {
	sig, _, ok := e.Functions.Lookup(name)
	return sig, ok
}

// Resolve finds the variable bound to name, innermost first.
func (e *Env) Resolve(name *symbols.Symbol) (*VariableBinding, table.ScopeKind, bool) {
	return e.Vars.Lookup(name)
}

// Global returns the global variable bound to name.
func (e *Env) Global(name *symbols.Symbol) (*VariableBinding, bool) {
	globals, ok := e.Vars.Outermost()
	if !ok {
		return nil, false
	}
	return globals.Get(name)
}
