package ast

import (
	"sealc/internal/source"
	"sealc/internal/symbols"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value. Every expression
// carries a resolved-type slot that is unset until semantic analysis visits it.
type Expression interface {
	Node
	Expr()
	ResolvedType() *symbols.Symbol
	SetType(t *symbols.Symbol)
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Decl represents a top-level declaration (function or global variable)
type Decl interface {
	Node
	Decl()
}

// Typed is embedded by every expression node to hold its resolved type.
type Typed struct {
	Type *symbols.Symbol // populated during semantic analysis
}

func (t *Typed) ResolvedType() *symbols.Symbol { return t.Type }
func (t *Typed) SetType(s *symbols.Symbol)     { t.Type = s }

// Program is the root of a parsed source file: its ordered top-level declarations.
type Program struct {
	Filename string // source file the tree was parsed from; may be empty
	Decls    []Decl
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Loc() *source.Location { return &p.Location }

// Funcs returns the function declarations in source order.
func (p *Program) Funcs() []*FuncDecl {
	var out []*FuncDecl
	for _, d := range p.Decls {
		if fn, ok := d.(*FuncDecl); ok {
			out = append(out, fn)
		}
	}
	return out
}

// Globals returns the global variable declarations in source order.
func (p *Program) Globals() []*VarDecl {
	var out []*VarDecl
	for _, d := range p.Decls {
		if v, ok := d.(*VarDecl); ok {
			out = append(out, v)
		}
	}
	return out
}
