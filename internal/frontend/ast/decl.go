package ast

import (
	"sealc/internal/source"
	"sealc/internal/symbols"
)

// VarDecl declares a variable: a global, a formal parameter or a block local.
type VarDecl struct {
	Name *symbols.Symbol
	Type *symbols.Symbol // declared type
	source.Location
}

func (v *VarDecl) INode()                {} // Implements Node interface
func (v *VarDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// FuncDecl declares a top-level function.
type FuncDecl struct {
	Name       *symbols.Symbol
	ReturnType *symbols.Symbol
	Params     []*VarDecl
	Body       *Block
	source.Location
}

func (f *FuncDecl) INode()                {} // Implements Node interface
func (f *FuncDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (f *FuncDecl) Loc() *source.Location { return &f.Location }
