package checker

import (
	"fmt"

	"sealc/internal/diagnostics"
	"sealc/internal/frontend/ast"
	"sealc/internal/semantics"
	"sealc/internal/symbols"
	"sealc/internal/tokens"
)

// checkExpr resolves the type of expr, annotates the node and returns the type.
func (c *Checker) checkExpr(expr ast.Expression) semantics.Type {
	var t semantics.Type

	switch e := expr.(type) {
	case *ast.BasicLit:
		t = c.checkBasicLit(e)
	case *ast.IdentifierExpr:
		t = c.checkIdentifier(e)
	case *ast.AssignExpr:
		t = c.checkAssignExpr(e)
	case *ast.BinaryExpr:
		t = c.checkBinaryExpr(e)
	case *ast.UnaryExpr:
		t = c.checkUnaryExpr(e)
	case *ast.CallExpr:
		t = c.checkCallExpr(e)
	case *ast.EmptyExpr:
		t = symbols.Void
	case nil:
		c.ctx.ReportInternal(0, "nil expression")
		return symbols.Void
	default:
		c.ctx.ReportInternal(expr.Loc().Line(), "unexpected expression %T", expr)
		return symbols.Void
	}

	expr.SetType(t)
	return t
}

// checkOptionalExpr checks an expression that may be omitted. An omitted
// expression has type Void.
func (c *Checker) checkOptionalExpr(expr ast.Expression) semantics.Type {
	if expr == nil {
		return symbols.Void
	}
	return c.checkExpr(expr)
}

func (c *Checker) checkBasicLit(lit *ast.BasicLit) semantics.Type {
	switch lit.Kind {
	case ast.INT:
		return symbols.Int
	case ast.FLOAT:
		return symbols.Float
	case ast.STRING:
		return symbols.String
	case ast.BOOL:
		return symbols.Bool
	default:
		c.ctx.ReportInternal(lit.Loc().Line(), "unknown literal kind %d", lit.Kind)
		return symbols.Void
	}
}

// resolve finds a variable through locals, formals and globals, reporting an
// undefined name.
func (c *Checker) resolve(name *symbols.Symbol, expr ast.Expression) (*semantics.VariableBinding, bool) {
	binding, _, ok := c.env.Resolve(name)
	if !ok {
		c.ctx.Diagnostics.Add(
			diagnostics.UndefinedSymbol(c.currentFile, expr.Loc(), "variable", name.String()),
		)
		return nil, false
	}
	return binding, true
}

func (c *Checker) checkIdentifier(ident *ast.IdentifierExpr) semantics.Type {
	binding, ok := c.resolve(ident.Name, ident)
	if !ok {
		return symbols.Void
	}
	return binding.Type
}

// checkAssignExpr checks the value before the target. The assignment has the
// variable's type even when the value does not match it.
func (c *Checker) checkAssignExpr(assign *ast.AssignExpr) semantics.Type {
	valueType := c.checkExpr(assign.Value)

	binding, ok := c.resolve(assign.Name, assign)
	if !ok {
		return symbols.Void
	}

	if binding.Type != valueType {
		expected, found := semantics.TypeString(binding.Type), semantics.TypeString(valueType)
		c.ctx.Diagnostics.Add(
			diagnostics.TypeMismatch(c.currentFile, assign.Loc(),
				fmt.Sprintf("cannot assign %s to variable %s of type %s", found, assign.Name, expected),
				expected, found),
		)
	}
	return binding.Type
}

func (c *Checker) checkBinaryExpr(expr *ast.BinaryExpr) semantics.Type {
	x := c.checkExpr(expr.X)
	y := c.checkExpr(expr.Y)

	if !tokens.IsBinary(expr.Op) {
		c.ctx.ReportInternal(expr.Loc().Line(), "unknown binary operator %q", expr.Op)
		return symbols.Void
	}

	result, ok := binaryResult(expr.Op, x, y)
	if !ok {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidOperands(c.currentFile, expr.Loc(), string(expr.Op),
				semantics.TypeString(x), semantics.TypeString(y)),
		)
		return symbols.Void
	}
	return result
}

func (c *Checker) checkUnaryExpr(expr *ast.UnaryExpr) semantics.Type {
	x := c.checkExpr(expr.X)

	if !tokens.IsUnary(expr.Op) {
		c.ctx.ReportInternal(expr.Loc().Line(), "unknown unary operator %q", expr.Op)
		return symbols.Void
	}

	result, ok := unaryResult(expr.Op, x)
	if !ok {
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidOperands(c.currentFile, expr.Loc(), string(expr.Op), semantics.TypeString(x)),
		)
		return symbols.Void
	}
	return result
}

// checkCallExpr types every argument first, then applies the call rules. A
// call to a declared function has the declared return type even when its
// arguments are wrong.
func (c *Checker) checkCallExpr(call *ast.CallExpr) semantics.Type {
	argTypes := make([]semantics.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = c.checkExpr(arg)
	}

	sig, ok := c.env.Function(call.Name)
	if !ok {
		c.ctx.Diagnostics.Add(
			diagnostics.UndefinedSymbol(c.currentFile, call.Loc(), "function", call.Name.String()),
		)
		return symbols.Void
	}

	if sig.IsPrimitive() {
		c.checkPrintArgs(call, argTypes)
		return sig.ReturnType
	}

	if len(argTypes) != len(sig.Params) {
		c.ctx.Diagnostics.Add(
			diagnostics.WrongArgumentCount(c.currentFile, call.Loc(), call.Name.String(), len(sig.Params), len(argTypes)),
		)
		return sig.ReturnType
	}

	for i, param := range sig.Params {
		if argTypes[i] != param.Type {
			c.ctx.Diagnostics.Add(
				diagnostics.WrongArgumentType(c.currentFile, call.Args[i].Loc(), call.Name.String(), i+1,
					semantics.TypeString(param.Type), semantics.TypeString(argTypes[i])),
			)
			break
		}
	}
	return sig.ReturnType
}

// checkPrintArgs requires a String first argument. The remaining arguments
// may have any type.
func (c *Checker) checkPrintArgs(call *ast.CallExpr, argTypes []semantics.Type) {
	switch {
	case len(argTypes) == 0:
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidPrintCall(c.currentFile, call.Loc(), call.Name.String(),
				"requires at least one argument of type String"),
		)
	case argTypes[0] != symbols.String:
		c.ctx.Diagnostics.Add(
			diagnostics.InvalidPrintCall(c.currentFile, call.Loc(), call.Name.String(),
				"first argument must be String, found "+semantics.TypeString(argTypes[0])),
		)
	}
}
