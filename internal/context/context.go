// Package context provides the shared compilation context for all semantic
// phases.
//
// Phases are stateless workers: the collector and the checker receive a
// CompilerContext and read the program, the symbol table and the namespaces
// from it, reporting every finding to ctx.Diagnostics. All tables are created
// fresh per run, so two runs over the same tree see identical state.
package context

import (
	"fmt"
	"io"
	"os"

	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
	"sealc/internal/symbols"
)

// CompilationPhase tracks the current phase of compilation
type CompilationPhase int

const (
	PhaseInitial    CompilationPhase = iota // Not started
	PhaseLoading                            // Decoding the parser's tree
	PhaseCollecting                         // Installing top-level declarations
	PhaseChecking                           // Checking function bodies
	PhaseComplete                           // Tree decorated, ready for code generation
)

func (p CompilationPhase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseLoading:
		return "loading"
	case PhaseCollecting:
		return "collecting"
	case PhaseChecking:
		return "checking"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// CompilerContext is the central hub for all compilation state.
type CompilerContext struct {
	// Diagnostics - centralized error collection. All phases report here.
	Diagnostics *diagnostics.DiagnosticBag

	// Symbols interns every name of the program. Shared by the loader and
	// the checker so that names compare by identity.
	Symbols *symbols.Table

	// Env holds the function namespace and the layered variable namespace.
	Env *semantics.Env

	// Program is the tree being checked. Expressions are decorated in place.
	Program *ast.Program

	CurrentPhase CompilationPhase

	Options *CompilerOptions

	internal []*diagnostics.InternalError
}

// New creates a context for one compilation session.
func New(options *CompilerOptions) *CompilerContext {
	if options == nil {
		options = DefaultOptions()
	}
	return &CompilerContext{
		Diagnostics:  diagnostics.NewDiagnosticBag(""),
		Symbols:      symbols.NewTable(),
		Env:          semantics.NewEnv(),
		Options:      options,
		CurrentPhase: PhaseInitial,
	}
}

// Reset prepares the context to check prog from scratch: fresh namespaces,
// an empty diagnostic bag and no internal errors. The symbol table is kept
// because prog's names were interned through it.
func (ctx *CompilerContext) Reset(prog *ast.Program) {
	ctx.Program = prog
	ctx.Env = semantics.NewEnv()
	ctx.Diagnostics = diagnostics.NewDiagnosticBag(ctx.FilePath())
	ctx.internal = nil
	ctx.CurrentPhase = PhaseInitial
}

// FilePath returns the source file the program was parsed from, or "".
func (ctx *CompilerContext) FilePath() string {
	if ctx.Program == nil {
		return ""
	}
	return ctx.Program.Filename
}

// Debugf writes a progress line to the debug output when debugging is on.
func (ctx *CompilerContext) Debugf(format string, args ...any) {
	if !ctx.Options.Debug {
		return
	}
	fmt.Fprintf(ctx.debugOutput(), format, args...)
}

func (ctx *CompilerContext) debugOutput() io.Writer {
	if ctx.Options.DebugOutput != nil {
		return ctx.Options.DebugOutput
	}
	return os.Stderr
}

// ReportInternal records a defect in the tree handed over by the parser.
// Internal errors are not diagnostics and never count toward Diagnostics.
func (ctx *CompilerContext) ReportInternal(line int, format string, args ...any) {
	ctx.internal = append(ctx.internal, &diagnostics.InternalError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// InternalErrors returns the internal errors reported so far.
func (ctx *CompilerContext) InternalErrors() []*diagnostics.InternalError {
	return ctx.internal
}

// HasErrors returns true if any errors have been reported during compilation.
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics writes all collected diagnostics to w, honoring MaxErrors.
func (ctx *CompilerContext) EmitDiagnostics(w io.Writer) {
	ctx.Diagnostics.EmitAllToWriter(w, ctx.Options.MaxErrors)
}
