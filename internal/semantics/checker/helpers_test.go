package checker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"sealc/internal/context"
	"sealc/internal/frontend/ast"
	"sealc/internal/frontend/loader"
	"sealc/internal/semantics/collector"
)

// The helpers below build the parser's tree format in YAML flow style.

func program(decls ...string) string {
	return "file: test.seal\ndecls:\n" + strings.Join(decls, "\n") + "\n"
}

func funcDecl(name, typ string, line int, params, body string) string {
	return fmt.Sprintf("  - {kind: func, name: %s, type: %s, line: %d, params: %s, body: %s}", name, typ, line, params, body)
}

func globalDecl(name, typ string, line int) string {
	return fmt.Sprintf("  - {kind: var, name: %s, type: %s, line: %d}", name, typ, line)
}

// mainFunc is a valid entry point whose body is body.
func mainFunc(body string) string {
	return funcDecl("main", "Void", 1, "[]", body)
}

// validMain is an entry point that triggers no diagnostics.
var validMain = mainFunc(block("[]", ret(1, "")))

func variable(name, typ string, line int) string {
	return fmt.Sprintf("{name: %s, type: %s, line: %d}", name, typ, line)
}

func list(items ...string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func block(vars string, stmts ...string) string {
	return fmt.Sprintf("{vars: %s, stmts: %s}", vars, list(stmts...))
}

func blockStmt(line int, vars string, stmts ...string) string {
	return fmt.Sprintf("{kind: block, line: %d, vars: %s, stmts: %s}", line, vars, list(stmts...))
}

func exprStmt(line int, x string) string {
	return fmt.Sprintf("{kind: expr, line: %d, expr: %s}", line, x)
}

func ret(line int, value string) string {
	if value == "" {
		return fmt.Sprintf("{kind: return, line: %d}", line)
	}
	return fmt.Sprintf("{kind: return, line: %d, value: %s}", line, value)
}

func brk(line int) string  { return fmt.Sprintf("{kind: break, line: %d}", line) }
func cont(line int) string { return fmt.Sprintf("{kind: continue, line: %d}", line) }

func ifStmt(line int, cond, then, els string) string {
	if els == "" {
		return fmt.Sprintf("{kind: if, line: %d, cond: %s, then: %s}", line, cond, then)
	}
	return fmt.Sprintf("{kind: if, line: %d, cond: %s, then: %s, else: %s}", line, cond, then, els)
}

func whileStmt(line int, cond, body string) string {
	return fmt.Sprintf("{kind: while, line: %d, cond: %s, body: %s}", line, cond, body)
}

// forStmt omits empty clauses.
func forStmt(line int, init, cond, post, body string) string {
	parts := []string{"kind: for", fmt.Sprintf("line: %d", line)}
	for _, clause := range [][2]string{{"init", init}, {"cond", cond}, {"post", post}} {
		if clause[1] != "" {
			parts = append(parts, clause[0]+": "+clause[1])
		}
	}
	parts = append(parts, "body: "+body)
	return "{" + strings.Join(parts, ", ") + "}"
}

func intLit(v string) string   { return fmt.Sprintf("{kind: int, value: %q}", v) }
func floatLit(v string) string { return fmt.Sprintf("{kind: float, value: %q}", v) }
func strLit(v string) string   { return fmt.Sprintf("{kind: string, value: %q}", v) }
func boolLit(v string) string  { return fmt.Sprintf("{kind: bool, value: %q}", v) }
func ident(name string) string { return fmt.Sprintf("{kind: ident, name: %s}", name) }

func assign(name, value string) string {
	return fmt.Sprintf("{kind: assign, name: %s, expr: %s}", name, value)
}

func binary(op, x, y string) string {
	return fmt.Sprintf("{kind: binary, op: %q, x: %s, y: %s}", op, x, y)
}

func unary(op, x string) string {
	return fmt.Sprintf("{kind: unary, op: %q, x: %s}", op, x)
}

func call(name string, args ...string) string {
	return fmt.Sprintf("{kind: call, name: %s, args: %s}", name, list(args...))
}

// check loads doc and runs both semantic phases over it.
func check(t *testing.T, doc string) *context.CompilerContext {
	t.Helper()

	ctx := context.New(nil)
	prog, err := loader.Parse([]byte(doc), ctx.Symbols)
	if err != nil {
		t.Fatalf("Failed to load program: %v\n%s", err, doc)
	}
	ctx.Reset(prog)
	collector.Run(ctx)
	Run(ctx)

	if errs := ctx.InternalErrors(); len(errs) > 0 {
		t.Fatalf("Unexpected internal errors: %v", errs)
	}
	return ctx
}

func assertCodes(t *testing.T, ctx *context.CompilerContext, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, ctx.Diagnostics.Codes(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("diagnostic codes mismatch (-want +got):\n%s\n%s", diff, render(ctx))
	}
}

func render(ctx *context.CompilerContext) string {
	var sb strings.Builder
	ctx.Diagnostics.EmitAllToWriter(&sb, 0)
	return sb.String()
}

func assertLines(t *testing.T, ctx *context.CompilerContext, want ...int) {
	t.Helper()
	got := make([]int, 0, len(want))
	for _, d := range ctx.Diagnostics.Diagnostics() {
		got = append(got, d.Line())
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("diagnostic lines mismatch (-want +got):\n%s", diff)
	}
}

// exprOf returns the expression of statement index of function fn.
func exprOf(t *testing.T, ctx *context.CompilerContext, fn, index int) ast.Expression {
	t.Helper()
	body := ctx.Program.Funcs()[fn].Body
	stmt, ok := body.Stmts[index].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("Expected *ast.ExprStmt at %d, got %T", index, body.Stmts[index])
	}
	return stmt.X
}
