package checker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
	"sealc/internal/symbols"
)

var localVars = list(
	variable("i", "Int", 2),
	variable("f", "Float", 2),
	variable("s", "String", 2),
	variable("b", "Bool", 2),
)

// checkInMain checks x as the only expression statement of main.
func checkInMain(t *testing.T, x string, decls ...string) (ast.Expression, []string) {
	t.Helper()
	main := mainFunc(block(localVars, exprStmt(3, x), ret(4, "")))
	ctx := check(t, program(append([]string{main}, decls...)...))
	return exprOf(t, ctx, 0, 0), ctx.Diagnostics.Codes()
}

func TestExpressionTypes(t *testing.T) {
	mismatch := []string{diagnostics.ErrTypeMismatch}

	tests := []struct {
		name  string
		expr  string
		want  semantics.Type
		codes []string
	}{
		{"int literal", intLit("1"), symbols.Int, nil},
		{"float literal", floatLit("1.5"), symbols.Float, nil},
		{"string literal", strLit("hi"), symbols.String, nil},
		{"bool literal", boolLit("false"), symbols.Bool, nil},
		{"int plus int", binary("+", ident("i"), intLit("2")), symbols.Int, nil},
		{"int plus float promotes", binary("+", intLit("1"), floatLit("2.0")), symbols.Float, nil},
		{"float times int promotes", binary("*", ident("f"), ident("i")), symbols.Float, nil},
		{"bool plus int", binary("+", boolLit("true"), intLit("1")), symbols.Void, mismatch},
		{"string minus string", binary("-", ident("s"), ident("s")), symbols.Void, mismatch},
		{"int mod int", binary("%", ident("i"), intLit("3")), symbols.Int, nil},
		{"float mod int", binary("%", ident("f"), ident("i")), symbols.Void, mismatch},
		{"less mixed numbers", binary("<", ident("i"), ident("f")), symbols.Bool, nil},
		{"greater equal strings", binary(">=", ident("s"), ident("s")), symbols.Void, mismatch},
		{"equal bools", binary("==", ident("b"), boolLit("true")), symbols.Bool, nil},
		{"not equal numbers", binary("!=", ident("i"), ident("f")), symbols.Bool, nil},
		{"equal strings", binary("==", ident("s"), strLit("x")), symbols.Void, mismatch},
		{"equal bool and int", binary("==", ident("b"), ident("i")), symbols.Void, mismatch},
		{"and bools", binary("&&", ident("b"), ident("b")), symbols.Bool, nil},
		{"or bool and int", binary("||", ident("b"), ident("i")), symbols.Void, mismatch},
		{"bit and ints", binary("&", ident("i"), intLit("1")), symbols.Int, nil},
		{"bit or bools", binary("|", ident("b"), ident("b")), symbols.Void, mismatch},
		{"xor bools", binary("^", ident("b"), boolLit("false")), symbols.Bool, nil},
		{"xor ints", binary("^", ident("i"), ident("i")), symbols.Int, nil},
		{"xor int and bool", binary("^", ident("i"), ident("b")), symbols.Void, mismatch},
		{"xor floats", binary("^", ident("f"), ident("f")), symbols.Void, mismatch},
		{"negate float", unary("-", ident("f")), symbols.Float, nil},
		{"negate int", unary("-", intLit("4")), symbols.Int, nil},
		{"negate bool", unary("-", ident("b")), symbols.Void, mismatch},
		{"not bool", unary("!", ident("b")), symbols.Bool, nil},
		{"not int", unary("!", ident("i")), symbols.Void, mismatch},
		{"complement int", unary("~", ident("i")), symbols.Int, nil},
		{"complement float", unary("~", ident("f")), symbols.Void, mismatch},
		{"assign matching", assign("i", intLit("1")), symbols.Int, nil},
		{"assign mismatch keeps variable type", assign("i", ident("f")), symbols.Int, mismatch},
		{"assign undefined", assign("nope", intLit("1")), symbols.Void, []string{diagnostics.ErrUndefinedSymbol}},
		{"undefined variable", ident("missing"), symbols.Void, []string{diagnostics.ErrUndefinedSymbol}},
		{"undefined operand cascades", binary("+", ident("missing"), ident("i")), symbols.Void,
			[]string{diagnostics.ErrUndefinedSymbol, diagnostics.ErrTypeMismatch}},
		{"printf with format", call("printf", strLit("%d"), ident("i")), symbols.Void, nil},
		{"printf without arguments", call("printf"), symbols.Void, []string{diagnostics.ErrInvalidPrintArgument}},
		{"printf without format", call("printf", ident("i")), symbols.Void, []string{diagnostics.ErrInvalidPrintArgument}},
		{"undefined function", call("nope", ident("i")), symbols.Void, []string{diagnostics.ErrUndefinedSymbol}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, codes := checkInMain(t, tt.expr)
			if got := expr.ResolvedType(); got != tt.want {
				t.Errorf("Expected type %s, got %s", tt.want, got)
			}
			if diff := cmp.Diff(tt.codes, codes, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diagnostic codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOperandsAreTypedBeforeOperator(t *testing.T) {
	expr, _ := checkInMain(t, binary("+", binary("*", ident("i"), ident("f")), unary("-", ident("missing"))))

	bin := expr.(*ast.BinaryExpr)
	if got := bin.X.ResolvedType(); got != symbols.Float {
		t.Errorf("Expected left operand Float, got %s", got)
	}
	neg := bin.Y.(*ast.UnaryExpr)
	if got := neg.X.ResolvedType(); got != symbols.Void {
		t.Errorf("Expected undefined operand Void, got %s", got)
	}
	if got := neg.ResolvedType(); got != symbols.Void {
		t.Errorf("Expected negation of Void to be Void, got %s", got)
	}
	if got := bin.ResolvedType(); got != symbols.Void {
		t.Errorf("Expected sum to be Void, got %s", got)
	}
}

var addDecl = funcDecl("add", "Int", 10,
	list(variable("a", "Int", 10), variable("b", "Int", 10)),
	block("[]", ret(11, binary("+", ident("a"), ident("b")))))

func TestCallWithMatchingArguments(t *testing.T) {
	expr, codes := checkInMain(t, call("add", ident("i"), intLit("2")), addDecl)
	if len(codes) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", codes)
	}
	if got := expr.ResolvedType(); got != symbols.Int {
		t.Errorf("Expected Int, got %s", got)
	}
}

func TestCallWithWrongArityKeepsReturnType(t *testing.T) {
	expr, codes := checkInMain(t, call("add", intLit("1")), addDecl)

	if diff := cmp.Diff([]string{diagnostics.ErrWrongArgumentCount}, codes); diff != "" {
		t.Errorf("diagnostic codes mismatch (-want +got):\n%s", diff)
	}
	if got := expr.ResolvedType(); got != symbols.Int {
		t.Errorf("Expected call to keep return type Int, got %s", got)
	}
	arg := expr.(*ast.CallExpr).Args[0]
	if got := arg.ResolvedType(); got != symbols.Int {
		t.Errorf("Expected argument to be typed Int, got %s", got)
	}
}

func TestCallReportsFirstMismatchOnly(t *testing.T) {
	expr, codes := checkInMain(t, call("add", ident("f"), ident("s")), addDecl)

	if diff := cmp.Diff([]string{diagnostics.ErrTypeMismatch}, codes); diff != "" {
		t.Errorf("diagnostic codes mismatch (-want +got):\n%s", diff)
	}
	if got := expr.ResolvedType(); got != symbols.Int {
		t.Errorf("Expected Int, got %s", got)
	}
	second := expr.(*ast.CallExpr).Args[1]
	if got := second.ResolvedType(); got != symbols.String {
		t.Errorf("Expected every argument to be typed, got %s", got)
	}
}

func TestUndefinedFunctionArgumentsAreTyped(t *testing.T) {
	expr, _ := checkInMain(t, call("nope", binary("+", ident("i"), ident("f"))))
	arg := expr.(*ast.CallExpr).Args[0]
	if got := arg.ResolvedType(); got != symbols.Float {
		t.Errorf("Expected Float, got %s", got)
	}
}

func TestLocalShadowsGlobal(t *testing.T) {
	main := mainFunc(block("[]",
		blockStmt(2, list(variable("g", "Int", 2)), exprStmt(3, ident("g"))),
		exprStmt(4, ident("g")),
		ret(5, ""),
	))
	ctx := check(t, program(globalDecl("g", "Float", 9), main))
	assertCodes(t, ctx)

	body := ctx.Program.Funcs()[0].Body
	inner := body.Stmts[0].(*ast.Block).Stmts[0].(*ast.ExprStmt).X
	if got := inner.ResolvedType(); got != symbols.Int {
		t.Errorf("Expected local g to be Int, got %s", got)
	}
	outer := body.Stmts[1].(*ast.ExprStmt).X
	if got := outer.ResolvedType(); got != symbols.Float {
		t.Errorf("Expected global g to be Float after the block, got %s", got)
	}
}

func TestFormalShadowsGlobal(t *testing.T) {
	get := funcDecl("get", "String", 10, list(variable("g", "String", 10)),
		block("[]", ret(11, ident("g"))))
	ctx := check(t, program(globalDecl("g", "Bool", 1), validMain, get))
	assertCodes(t, ctx)
}

func TestNoDiagnosticsMeansEveryExpressionTyped(t *testing.T) {
	main := mainFunc(block(list(variable("x", "Float", 2)),
		exprStmt(3, assign("x", binary("+", call("add", intLit("1"), intLit("2")), floatLit("0.5")))),
		forStmt(4, "", binary("<", ident("x"), intLit("10")), assign("x", binary("*", ident("x"), floatLit("2.0"))),
			block("[]", exprStmt(5, call("printf", strLit("%f"), ident("x"))))),
		ret(6, ""),
	))
	ctx := check(t, program(main, addDecl))
	assertCodes(t, ctx)

	for _, expr := range ast.Expressions(ctx.Program) {
		if !symbols.IsType(expr.ResolvedType()) {
			t.Errorf("Expected %T to be typed, got %s", expr, expr.ResolvedType())
		}
	}
}
