package ast

import (
	"sealc/internal/source"
	"sealc/internal/symbols"
	"sealc/internal/tokens"
)

// IdentifierExpr is a reference to a variable
type IdentifierExpr struct {
	Name *symbols.Symbol
	Typed
	source.Location
}

func (i *IdentifierExpr) INode()                {} // Implements Node interface
func (i *IdentifierExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// AssignExpr stores Value into the variable Name.
type AssignExpr struct {
	Name  *symbols.Symbol
	Value Expression
	Typed
	source.Location
}

func (a *AssignExpr) INode()                {} // Implements Node interface
func (a *AssignExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (a *AssignExpr) Loc() *source.Location { return &a.Location }

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X  Expression   // left operand
	Op tokens.TOKEN // operator
	Y  Expression   // right operand
	Typed
	source.Location
}

func (b *BinaryExpr) INode()                {} // Implements Node interface
func (b *BinaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// UnaryExpr represents a prefix expression (-x, !x, ~x)
type UnaryExpr struct {
	Op tokens.TOKEN // operator
	X  Expression   // operand
	Typed
	source.Location
}

func (u *UnaryExpr) INode()                {} // Implements Node interface
func (u *UnaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// CallExpr calls a top-level function (or the print primitive) by name.
type CallExpr struct {
	Name *symbols.Symbol
	Args []Expression
	Typed
	source.Location
}

func (c *CallExpr) INode()                {} // Implements Node interface
func (c *CallExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// EmptyExpr stands for an omitted expression (for-loop clauses, bare return).
type EmptyExpr struct {
	Typed
	source.Location
}

func (e *EmptyExpr) INode()                {} // Implements Node interface
func (e *EmptyExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (e *EmptyExpr) Loc() *source.Location { return &e.Location }

// IsEmpty reports whether e is absent or the empty placeholder.
func IsEmpty(e Expression) bool {
	if e == nil {
		return true
	}
	_, ok := e.(*EmptyExpr)
	return ok
}
