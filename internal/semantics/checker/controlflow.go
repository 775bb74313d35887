package checker

import (
	"fmt"

	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
)

// bodyDepth is the block-nesting depth of a function's outermost block.
const bodyDepth = 1

// noLoop marks that no loop encloses the current statement.
const noLoop = 0

// flow is the control-flow state of one function check. It is created per
// function and threaded through the statement walk.
type flow struct {
	fn         *ast.FuncDecl
	returnType semantics.Type

	depth     int // current block-nesting depth
	loopDepth int // body depth of the nearest enclosing loop, or noLoop

	returnSeen    bool  // a return was found at bodyDepth
	nestedReturns []int // lines of returns found deeper than bodyDepth
}

func newFlow(fn *ast.FuncDecl) *flow {
	return &flow{
		fn:         fn,
		returnType: fn.ReturnType,
		loopDepth:  noLoop,
	}
}

func (f *flow) enterBlock() { f.depth++ }
func (f *flow) exitBlock()  { f.depth-- }

// enterLoop records that the next block opened is a loop body.
func (f *flow) enterLoop() { f.loopDepth = f.depth + 1 }

// exitLoop clears the loop context. It does not restore an outer loop.
func (f *flow) exitLoop() { f.loopDepth = noLoop }

// inLoop reports whether break and continue are legal at the current depth.
func (f *flow) inLoop() bool {
	return f.loopDepth != noLoop && f.depth >= f.loopDepth
}

// sawReturn records a return statement at the current depth.
func (f *flow) sawReturn(line int) {
	if f.depth == bodyDepth {
		f.returnSeen = true
		return
	}
	f.nestedReturns = append(f.nestedReturns, line)
}

// checkFunctionReturns reports a function whose outermost block has no return.
// Only returns at the body depth count, whatever the branches below return.
func (c *Checker) checkFunctionReturns(f *flow) {
	if f.returnSeen {
		return
	}
	diag := missingReturn(c.currentFile, f.fn)
	if len(f.nestedReturns) > 0 {
		diag.WithNote(fmt.Sprintf("the return on line %d is nested inside a block", f.nestedReturns[0]))
	}
	c.ctx.Diagnostics.Add(diag)
}
