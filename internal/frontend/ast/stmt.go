package ast

import "sealc/internal/source"

// Block is a braced statement list with its own local variable declarations,
// which precede the statements.
type Block struct {
	Vars  []*VarDecl
	Stmts []Statement
	source.Location
}

func (b *Block) INode()                {} // Implements Node interface
func (b *Block) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *Block) Loc() *source.Location { return &b.Location }

// IfStmt is a conditional. Else may be nil.
type IfStmt struct {
	Cond Expression
	Then *Block
	Else *Block
	source.Location
}

func (i *IfStmt) INode()                {} // Implements Node interface
func (i *IfStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt loops while Cond holds.
type WhileStmt struct {
	Cond Expression
	Body *Block
	source.Location
}

func (w *WhileStmt) INode()                {} // Implements Node interface
func (w *WhileStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// ForStmt is a three-clause loop. Omitted clauses are *EmptyExpr.
type ForStmt struct {
	Init Expression
	Cond Expression
	Post Expression
	Body *Block
	source.Location
}

func (f *ForStmt) INode()                {} // Implements Node interface
func (f *ForStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (f *ForStmt) Loc() *source.Location { return &f.Location }

// ReturnStmt returns from the enclosing function. A bare return has an
// *EmptyExpr value.
type ReturnStmt struct {
	Value Expression
	source.Location
}

func (r *ReturnStmt) INode()                {} // Implements Node interface
func (r *ReturnStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }

type BreakStmt struct {
	source.Location
}

func (b *BreakStmt) INode()                {} // Implements Node interface
func (b *BreakStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *BreakStmt) Loc() *source.Location { return &b.Location }

type ContinueStmt struct {
	source.Location
}

func (c *ContinueStmt) INode()                {} // Implements Node interface
func (c *ContinueStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (c *ContinueStmt) Loc() *source.Location { return &c.Location }

// ExprStmt is an expression evaluated for its effect (calls, assignments).
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {} // Implements Node interface
func (e *ExprStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (e *ExprStmt) Loc() *source.Location { return &e.Location }
