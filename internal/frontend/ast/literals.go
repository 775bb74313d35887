package ast

import "sealc/internal/source"

type LiteralKind int

const (
	INT LiteralKind = iota
	FLOAT
	STRING
	BOOL
)

func (k LiteralKind) String() string {
	switch k {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case BOOL:
		return "bool"
	default:
		return "unknown"
	}
}

// BasicLit represents a literal of basic type (int, float, string, bool)
type BasicLit struct {
	Kind  LiteralKind
	Value string // the literal value as a string
	Typed
	source.Location
}

func (b *BasicLit) INode()                {} // Implements Node interface
func (b *BasicLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location { return &b.Location }
