// Package context - compilation pipeline
//
// Phase progression:
//
//	Tree file -> [Loader] -> Collector -> Checker -> decorated tree
//
// The collector and checker import this package, so they are registered by
// the entry point through CollectorRun and CheckerRun rather than imported.
package context

import (
	"errors"
	"fmt"

	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/frontend/loader"
	"sealc/internal/semantics/table"
)

// Phase runners, registered by the entry point to avoid import cycles.
var (
	CollectorRun func(*CompilerContext)
	CheckerRun   func(*CompilerContext)
)

var (
	// ErrSemantic is returned when the program has at least one diagnostic.
	ErrSemantic = errors.New("static semantic errors")

	// ErrInternal is returned when the tree violates the parser contract.
	ErrInternal = errors.New("internal compiler error")
)

// Pipeline manages the compilation pipeline
type Pipeline struct {
	Context *CompilerContext
}

// NewPipeline creates a new compilation pipeline with the given options
func NewPipeline(options *CompilerOptions) *Pipeline {
	return &Pipeline{
		Context: New(options),
	}
}

// Compile loads the serialized tree at path and checks it.
func (p *Pipeline) Compile(path string) error {
	ctx := p.Context
	ctx.CurrentPhase = PhaseLoading
	ctx.Debugf("\n[Phase 1] Loading %s\n", path)

	prog, err := loader.LoadFile(path, ctx.Symbols)
	if err != nil {
		return err
	}
	ctx.Debugf("  Loaded %d declaration(s), %d name(s)\n", len(prog.Decls), ctx.Symbols.Len())

	return p.Check(prog)
}

// Check runs the semantic phases over prog. Its names must have been interned
// through p.Context.Symbols. On success every expression in prog carries its
// resolved type.
func (p *Pipeline) Check(prog *ast.Program) error {
	ctx := p.Context
	if prog == nil {
		return fmt.Errorf("%w: no program", ErrInternal)
	}
	if CollectorRun == nil || CheckerRun == nil {
		return fmt.Errorf("%w: semantic phases not registered", ErrInternal)
	}
	ctx.Reset(prog)

	ctx.CurrentPhase = PhaseCollecting
	ctx.Debugf("\n[Phase 2] Declaration Installation\n")
	CollectorRun(ctx)
	ctx.Debugf("  %d function(s), %d global(s) installed\n",
		outermostLen(ctx.Env.Functions), outermostLen(ctx.Env.Vars))

	ctx.CurrentPhase = PhaseChecking
	ctx.Debugf("\n[Phase 3] Type Checking\n")
	CheckerRun(ctx)

	if internal := ctx.InternalErrors(); len(internal) > 0 {
		errs := make([]error, 0, len(internal))
		for _, e := range internal {
			errs = append(errs, e)
		}
		return fmt.Errorf("%w: %w", ErrInternal, errors.Join(errs...))
	}

	if n := ctx.Diagnostics.Count(); n > 0 {
		ctx.Debugf("  ✗ %d diagnostic(s)\n", n)
		debugKinds(ctx)
		return fmt.Errorf("%w: %d diagnostic(s)", ErrSemantic, n)
	}

	// a tree leaves this phase fully annotated
	for _, e := range ast.Expressions(prog) {
		if e.ResolvedType() == nil {
			return fmt.Errorf("%w: expression at line %d has no type", ErrInternal, e.Loc().Line())
		}
	}

	ctx.CurrentPhase = PhaseComplete
	ctx.Debugf("  ✓ Type checked %d function(s)\n", len(prog.Funcs()))
	return nil
}

// outermostLen returns the number of bindings in the bottom scope of s.
func outermostLen[V any](s *table.Stack[V]) int {
	if scope, ok := s.Outermost(); ok {
		return scope.Len()
	}
	return 0
}

// debugKinds prints how many diagnostics fall into each category, in order of
// first appearance.
func debugKinds(ctx *CompilerContext) {
	if !ctx.Options.Debug {
		return
	}
	counts := make(map[diagnostics.Kind]int)
	var order []diagnostics.Kind
	for _, code := range ctx.Diagnostics.Codes() {
		kind := diagnostics.KindOf(code)
		if kind == "" {
			kind = "other"
		}
		if counts[kind] == 0 {
			order = append(order, kind)
		}
		counts[kind]++
	}
	for _, kind := range order {
		ctx.Debugf("    %s: %d\n", kind, counts[kind])
	}
}
