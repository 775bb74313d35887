package semantics

import (
	"fmt"
	"strings"

	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/symbols"
)

// MaxParams is the largest number of formal parameters a function may declare.
const MaxParams = 6

// VariableBinding is a named, typed slot: a global, a formal or a local.
type VariableBinding struct {
	Name *symbols.Symbol
	Type Type
	Decl *ast.VarDecl // nil for synthesized bindings
}

// FunctionSignature is what a call site is checked against.
type FunctionSignature struct {
	Name       *symbols.Symbol
	ReturnType Type
	Params     []VariableBinding
	Decl       *ast.FuncDecl // nil for the print primitive
}

// NewSignature builds a signature from a declaration. The parameter list is
// copied so later checks never observe mutations of the declaration.
func NewSignature(decl *ast.FuncDecl) *FunctionSignature {
	params := make([]VariableBinding, 0, len(decl.Params))
	for _, p := range decl.Params {
		params = append(params, VariableBinding{Name: p.Name, Type: p.Type, Decl: p})
	}
	return &FunctionSignature{
		Name:       decl.Name,
		ReturnType: decl.ReturnType,
		Params:     params,
		Decl:       decl,
	}
}

// IsPrimitive reports whether the signature is the runtime print primitive.
func (f *FunctionSignature) IsPrimitive() bool {
	return f.Name == symbols.Print
}

func (f *FunctionSignature) String() string {
	parts := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		parts = append(parts, fmt.Sprintf("%s %s", p.Name, TypeString(p.Type)))
	}
	return fmt.Sprintf("func %s(%s) %s", f.Name, strings.Join(parts, ", "), TypeString(f.ReturnType))
}

// VariableTypeDiagnostic returns the diagnostic for a variable declared with a
// type no variable may have, or nil when the type is valid. kind names the
// variable's role in messages ("global variable", "parameter", ...).
func VariableTypeDiagnostic(filepath string, v *ast.VarDecl, kind string) *diagnostics.Diagnostic {
	switch {
	case v.Type == symbols.Void:
		return diagnostics.InvalidVoidUsage(filepath, v.Loc(), kind, v.Name.String())
	case !symbols.IsType(v.Type):
		return diagnostics.InvalidVariableType(filepath, v.Loc(), kind, v.Name.String(), TypeString(v.Type))
	default:
		return nil
	}
}

// NewBinding binds a declared variable.
func NewBinding(v *ast.VarDecl) *VariableBinding {
	return &VariableBinding{Name: v.Name, Type: v.Type, Decl: v}
}
