// Package checker type checks function bodies (Phase 3).
//
// Statements are checked in order, expressions bottom-up: every operand is
// typed before its operator's rule applies, and every expression node is
// annotated with its resolved type. A violation is reported and replaced by
// a fallback type (usually Void), so one pass reports every error.
package checker

import (
	"fmt"

	"sealc/internal/context"
	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
	"sealc/internal/semantics/table"
	"sealc/internal/source"
	"sealc/internal/symbols"
)

// Checker walks function bodies against the installed declarations.
type Checker struct {
	ctx         *context.CompilerContext
	env         *semantics.Env
	currentFile string
}

// New creates a new type checker
func New(ctx *context.CompilerContext) *Checker {
	return &Checker{
		ctx:         ctx,
		env:         ctx.Env,
		currentFile: ctx.FilePath(),
	}
}

// Run checks every function body of ctx.Program. The collector must have run.
func Run(ctx *context.CompilerContext) {
	if ctx.Program == nil {
		ctx.ReportInternal(0, "checker: no program to check")
		return
	}
	New(ctx).CheckProgram(ctx.Program)
}

// CheckProgram checks the function declarations of prog in source order,
// including declarations the collector rejected.
func (c *Checker) CheckProgram(prog *ast.Program) {
	for _, decl := range prog.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			c.CheckFunction(fn)
		}
	}
}

// CheckFunction checks one function: its signature, its formals and its body.
func (c *Checker) CheckFunction(fn *ast.FuncDecl) {
	c.ctx.Debugf("  Checking %s\n", fn.Name)
	c.checkSignature(fn)

	c.env.Vars.Push(table.ScopeFormal)
	c.declareParams(fn)

	if fn.Body == nil {
		c.ctx.ReportInternal(fn.Loc().Line(), "function %s has no body", fn.Name)
		c.popScope(fn.Loc())
		return
	}

	f := newFlow(fn)
	c.checkBlock(fn.Body, f)
	c.popScope(fn.Loc())
	c.checkFunctionReturns(f)
}

// checkSignature validates the declared return type and the entry point's shape.
func (c *Checker) checkSignature(fn *ast.FuncDecl) {
	if !symbols.IsType(fn.ReturnType) {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidReturnType(c.currentFile, fn.Loc(), fn.Name.String(), semantics.TypeString(fn.ReturnType)),
		)
	}

	if fn.Name != symbols.Main {
		return
	}
	if fn.ReturnType != symbols.Void {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidMain(c.currentFile, fn.Loc(), "must return Void, found "+semantics.TypeString(fn.ReturnType)),
		)
	}
	if n := len(fn.Params); n != 0 {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidMain(c.currentFile, fn.Loc(), fmt.Sprintf("must take no parameters, found %d", n)),
		)
	}
}

// declareParams binds the formals into the innermost (formal) scope.
func (c *Checker) declareParams(fn *ast.FuncDecl) {
	for _, p := range fn.Params {
		if diag := semantics.VariableTypeDiagnostic(c.currentFile, p, "parameter"); diag != nil {
			c.ctx.Diagnostics.Add(diag)
			continue
		}
		c.declare(p, "parameter")
	}

	if n := len(fn.Params); n > semantics.MaxParams {
		c.ctx.Diagnostics.Add(
			diagnostics.TooManyParams(c.currentFile, fn.Loc(), fn.Name.String(), semantics.MaxParams, n),
		)
	}
}

// declare binds v in the innermost scope, reporting a duplicate in that scope.
func (c *Checker) declare(v *ast.VarDecl, kind string) {
	if err := c.env.Vars.Declare(v.Name, semantics.NewBinding(v)); err != nil {
		var prevLoc *source.Location
		if prev, ok := c.env.Vars.Probe(v.Name); ok && prev.Decl != nil {
			prevLoc = prev.Decl.Loc()
		}
		c.ctx.Diagnostics.Add(
			diagnostics.RedeclaredSymbol(c.currentFile, v.Loc(), prevLoc, kind, v.Name.String()),
		)
	}
}

func (c *Checker) popScope(loc *source.Location) {
	if _, err := c.env.Vars.Pop(); err != nil {
		c.ctx.ReportInternal(loc.Line(), "unbalanced scopes: %v", err)
	}
}

func missingReturn(filepath string, fn *ast.FuncDecl) *diagnostics.Diagnostic {
	return diagnostics.MissingReturn(filepath, fn.Loc(), fn.Name.String())
}
