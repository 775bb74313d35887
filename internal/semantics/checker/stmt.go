package checker

import (
	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
	"sealc/internal/semantics/table"
	"sealc/internal/symbols"
)

func (c *Checker) checkStmt(stmt ast.Statement, f *flow) {
	switch s := stmt.(type) {
	case *ast.Block:
		c.checkBlock(s, f)
	case *ast.IfStmt:
		c.checkIfStmt(s, f)
	case *ast.WhileStmt:
		c.checkWhileStmt(s, f)
	case *ast.ForStmt:
		c.checkForStmt(s, f)
	case *ast.ReturnStmt:
		c.checkReturnStmt(s, f)
	case *ast.BreakStmt:
		if !f.inLoop() {
			c.ctx.Diagnostics.Add(diagnostics.InvalidBreak(c.currentFile, s.Loc()))
		}
	case *ast.ContinueStmt:
		if !f.inLoop() {
			c.ctx.Diagnostics.Add(diagnostics.InvalidContinue(c.currentFile, s.Loc()))
		}
	case *ast.ExprStmt:
		c.checkExpr(s.X)
	case nil:
		c.ctx.ReportInternal(f.fn.Loc().Line(), "nil statement in function %s", f.fn.Name)
	default:
		c.ctx.ReportInternal(stmt.Loc().Line(), "unexpected statement %T", stmt)
	}
}

// checkBlock opens a local scope for the block's variables, checks its
// statements and closes the scope again.
func (c *Checker) checkBlock(block *ast.Block, f *flow) {
	if block == nil {
		c.ctx.ReportInternal(f.fn.Loc().Line(), "nil block in function %s", f.fn.Name)
		return
	}

	f.enterBlock()
	c.env.Vars.Push(table.ScopeLocal)

	for _, v := range block.Vars {
		if diag := semantics.VariableTypeDiagnostic(c.currentFile, v, "local variable"); diag != nil {
			c.ctx.Diagnostics.Add(diag)
			continue
		}
		c.declare(v, "local variable")
	}
	for _, s := range block.Stmts {
		c.checkStmt(s, f)
	}

	c.popScope(block.Loc())
	f.exitBlock()
}

func (c *Checker) checkIfStmt(stmt *ast.IfStmt, f *flow) {
	c.checkCondition(stmt.Cond, "if")
	c.checkBlock(stmt.Then, f)
	if stmt.Else != nil {
		c.checkBlock(stmt.Else, f)
	}
}

func (c *Checker) checkWhileStmt(stmt *ast.WhileStmt, f *flow) {
	f.enterLoop()
	c.checkCondition(stmt.Cond, "while")
	c.checkBlock(stmt.Body, f)
	f.exitLoop()
}

// checkForStmt checks init, condition, post and body in that order. An
// omitted condition is allowed.
func (c *Checker) checkForStmt(stmt *ast.ForStmt, f *flow) {
	f.enterLoop()
	c.checkOptionalExpr(stmt.Init)
	if ast.IsEmpty(stmt.Cond) {
		c.checkOptionalExpr(stmt.Cond)
	} else {
		c.checkCondition(stmt.Cond, "for")
	}
	c.checkOptionalExpr(stmt.Post)
	c.checkBlock(stmt.Body, f)
	f.exitLoop()
}

func (c *Checker) checkCondition(cond ast.Expression, stmt string) {
	if cond == nil {
		c.ctx.ReportInternal(0, "%s statement without a condition", stmt)
		return
	}
	if t := c.checkExpr(cond); t != symbols.Bool {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidCondition(c.currentFile, cond.Loc(), stmt, semantics.TypeString(t)),
		)
	}
}

// checkReturnStmt compares the returned type with the declared one exactly;
// no numeric promotion applies.
func (c *Checker) checkReturnStmt(stmt *ast.ReturnStmt, f *flow) {
	f.sawReturn(stmt.Loc().Line())

	t := c.checkOptionalExpr(stmt.Value)
	if t != f.returnType {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidReturn(c.currentFile, stmt.Loc(),
				semantics.TypeString(f.returnType), semantics.TypeString(t)),
		)
	}
}
