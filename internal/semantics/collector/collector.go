// Package collector installs top-level declarations (Phase 2).
//
// Functions are installed first, then the existence of main is checked, then
// global variables are installed. Every function body is checked later, so a
// body may reference any function or global regardless of declaration order.
package collector

import (
	"sealc/internal/context"
	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
	"sealc/internal/source"
	"sealc/internal/symbols"
)

// Collector populates the function namespace and the global variable scope.
type Collector struct {
	ctx         *context.CompilerContext
	currentFile string
}

// New creates a new declaration collector
func New(ctx *context.CompilerContext) *Collector {
	return &Collector{
		ctx:         ctx,
		currentFile: ctx.FilePath(),
	}
}

// Run installs the declarations of ctx.Program.
func Run(ctx *context.CompilerContext) {
	if ctx.Program == nil {
		ctx.ReportInternal(0, "collector: no program to install")
		return
	}
	New(ctx).Collect(ctx.Program)
}

// Collect installs every declaration of prog, in source order within each pass.
func (c *Collector) Collect(prog *ast.Program) {
	var funcs []*ast.FuncDecl
	var globals []*ast.VarDecl
	for i, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			funcs = append(funcs, d)
		case *ast.VarDecl:
			globals = append(globals, d)
		case nil:
			c.ctx.ReportInternal(0, "declaration %d is nil", i)
		default:
			c.ctx.ReportInternal(decl.Loc().Line(), "unexpected declaration %T", decl)
		}
	}

	c.installFunctions(funcs)
	c.checkMain()
	c.installGlobals(globals)
}

// installFunctions registers one signature per function name. The print
// primitive is preinstalled and cannot be redeclared; for duplicate names the
// first declaration wins.
func (c *Collector) installFunctions(funcs []*ast.FuncDecl) {
	env := c.ctx.Env
	for _, fn := range funcs {
		if fn.Name == symbols.Print {
			c.ctx.Diagnostics.Add(
				diagnostics.PrimitiveRedefined(c.currentFile, fn.Loc(), fn.Name.String()),
			)
			continue
		}

		if err := env.Functions.Declare(fn.Name, semantics.NewSignature(fn)); err != nil {
			var prevLoc *source.Location
			if prev, ok := env.Functions.Probe(fn.Name); ok && prev.Decl != nil {
				prevLoc = prev.Decl.Loc()
			}
			c.ctx.Diagnostics.Add(
				diagnostics.RedeclaredSymbol(c.currentFile, fn.Loc(), prevLoc, "function", fn.Name.String()),
			)
			continue
		}
		c.ctx.Debugf("  func %s\n", fn.Name)
	}
}

func (c *Collector) checkMain() {
	if _, ok := c.ctx.Env.Function(symbols.Main); !ok {
		c.ctx.Diagnostics.Add(diagnostics.MissingMain(c.currentFile))
	}
}

// installGlobals registers the global variables. A global with an invalid
// type is reported and left unregistered, so later references to it are
// reported as undefined.
func (c *Collector) installGlobals(globals []*ast.VarDecl) {
	env := c.ctx.Env
	for _, v := range globals {
		if diag := semantics.VariableTypeDiagnostic(c.currentFile, v, "global variable"); diag != nil {
			c.ctx.Diagnostics.Add(diag)
			continue
		}

		if err := env.Vars.Declare(v.Name, semantics.NewBinding(v)); err != nil {
			var prevLoc *source.Location
			if prev, ok := env.Global(v.Name); ok && prev.Decl != nil {
				prevLoc = prev.Decl.Loc()
			}
			c.ctx.Diagnostics.Add(
				diagnostics.RedeclaredSymbol(c.currentFile, v.Loc(), prevLoc, "global variable", v.Name.String()),
			)
			continue
		}
		c.ctx.Debugf("  var %s %s\n", v.Name, v.Type)
	}
}
