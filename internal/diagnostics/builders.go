package diagnostics

import (
	"fmt"

	"sealc/internal/source"
)

// Common diagnostic builders for declaration installation

// RedeclaredSymbol creates a diagnostic for a redeclared function, global,
// formal parameter or local variable. kind names the namespace ("function",
// "global variable", ...).
func RedeclaredSymbol(filepath string, newLoc, prevLoc *source.Location, kind, name string) *Diagnostic {
	diag := NewError(fmt.Sprintf("%s %s is already declared", kind, name)).
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(filepath, newLoc, "redeclared here")
	if prevLoc != nil && prevLoc.Start != nil {
		diag.WithSecondaryLabel(filepath, prevLoc, "previously declared here")
	}
	return diag.WithHelp("use a different name or remove one of the declarations")
}

// PrimitiveRedefined creates a diagnostic for a declaration of the print primitive.
func PrimitiveRedefined(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("function %s cannot be redefined", name)).
		WithCode(ErrPrimitiveRedefined).
		WithPrimaryLabel(filepath, loc, "built-in function").
		WithHelp("rename this function")
}

// InvalidVoidUsage creates a diagnostic for a variable or parameter of type Void.
func InvalidVoidUsage(filepath string, loc *source.Location, kind, name string) *Diagnostic {
	return NewError(fmt.Sprintf("%s %s cannot be of type Void", kind, name)).
		WithCode(ErrInvalidVoid).
		WithPrimaryLabel(filepath, loc, "Void is only allowed as a return type")
}

// InvalidVariableType creates a diagnostic for a variable or parameter whose
// declared type is not one of the built-in types.
func InvalidVariableType(filepath string, loc *source.Location, kind, name, typ string) *Diagnostic {
	return NewError(fmt.Sprintf("%s %s has unknown type %s", kind, name, typ)).
		WithCode(ErrInvalidType).
		WithPrimaryLabel(filepath, loc, "unknown type").
		WithNote("valid types are Int, Float, String and Bool")
}

// MissingMain creates a diagnostic for a program without an entry point.
func MissingMain(filepath string) *Diagnostic {
	diag := NewError("function main is not defined").
		WithCode(ErrMissingMain).
		WithHelp("add a function: func main() Void { ... }")
	diag.FilePath = filepath
	return diag
}

// Common diagnostic builders for function signatures

// InvalidMain creates a diagnostic for a main function with the wrong signature.
func InvalidMain(filepath string, loc *source.Location, reason string) *Diagnostic {
	return NewError("function main "+reason).
		WithCode(ErrInvalidMain).
		WithPrimaryLabel(filepath, loc, "declared here").
		WithNote("main must return Void and take no parameters")
}

// InvalidReturnType creates a diagnostic for an unknown declared return type.
func InvalidReturnType(filepath string, loc *source.Location, fn, typ string) *Diagnostic {
	return NewError(fmt.Sprintf("function %s has incorrect return type %s", fn, typ)).
		WithCode(ErrInvalidType).
		WithPrimaryLabel(filepath, loc, "unknown type").
		WithNote("valid types are Int, Float, String, Bool and Void")
}

// TooManyParams creates a diagnostic for a function declaring too many formals.
func TooManyParams(filepath string, loc *source.Location, fn string, limit, found int) *Diagnostic {
	return NewError(fmt.Sprintf("function %s has more than %d parameters", fn, limit)).
		WithCode(ErrTooManyParams).
		WithPrimaryLabel(filepath, loc, fmt.Sprintf("%d parameters declared", found))
}

// Common diagnostic builders for type checker

// TypeMismatch creates a diagnostic for type mismatch
func TypeMismatch(filepath string, loc *source.Location, message, expected, found string) *Diagnostic {
	return NewError(message).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(filepath, loc, "expected "+expected+", found "+found)
}

// InvalidOperands creates a diagnostic for an operator applied to operands of
// the wrong types.
func InvalidOperands(filepath string, loc *source.Location, op string, operands ...string) *Diagnostic {
	var msg, label string
	switch len(operands) {
	case 1:
		msg = fmt.Sprintf("cannot use %s on %s", op, operands[0])
		label = "operand has type " + operands[0]
	default:
		msg = fmt.Sprintf("cannot use %s between %s and %s", op, operands[0], operands[1])
		label = fmt.Sprintf("operands have types %s and %s", operands[0], operands[1])
	}
	return NewError(msg).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(filepath, loc, label)
}

// InvalidCondition creates a diagnostic for a non-Bool condition.
func InvalidCondition(filepath string, loc *source.Location, stmt, found string) *Diagnostic {
	return NewError(fmt.Sprintf("%s condition must be Bool, found %s", stmt, found)).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(filepath, loc, "expected Bool, found "+found)
}

// InvalidReturn creates a diagnostic for a return value of the wrong type.
func InvalidReturn(filepath string, loc *source.Location, expected, found string) *Diagnostic {
	return NewError(fmt.Sprintf("return type should be %s, found %s", expected, found)).
		WithCode(ErrInvalidReturn).
		WithPrimaryLabel(filepath, loc, "expected "+expected+", found "+found).
		WithNote("return values are not converted implicitly")
}

// UndefinedSymbol creates a diagnostic for undefined symbol
func UndefinedSymbol(filepath string, loc *source.Location, kind, name string) *Diagnostic {
	return NewError(fmt.Sprintf("%s %s is not defined", kind, name)).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(filepath, loc, "not found in this scope").
		WithHelp("check if the symbol is declared")
}

// WrongArgumentCount creates a diagnostic for wrong number of arguments
func WrongArgumentCount(filepath string, loc *source.Location, fn string, expected, found int) *Diagnostic {
	return NewError(fmt.Sprintf("function %s called with incorrect number of arguments", fn)).
		WithCode(ErrWrongArgumentCount).
		WithPrimaryLabel(filepath, loc, fmt.Sprintf("expected %d arguments, found %d", expected, found))
}

// WrongArgumentType creates a diagnostic for the first mismatching argument of a call.
func WrongArgumentType(filepath string, loc *source.Location, fn string, index int, expected, found string) *Diagnostic {
	return NewError(fmt.Sprintf("function %s argument %d should be %s, found %s", fn, index, expected, found)).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(filepath, loc, "expected "+expected+", found "+found)
}

// InvalidPrintCall creates a diagnostic for a print call without a leading String.
func InvalidPrintCall(filepath string, loc *source.Location, name, reason string) *Diagnostic {
	return NewError(fmt.Sprintf("%s() %s", name, reason)).
		WithCode(ErrInvalidPrintArgument).
		WithPrimaryLabel(filepath, loc, "invalid call").
		WithHelp(fmt.Sprintf("pass a format string first: %s(\"...\", ...)", name))
}

// Common diagnostic builders for control flow

// InvalidBreak creates a diagnostic for break outside a loop.
func InvalidBreak(filepath string, loc *source.Location) *Diagnostic {
	return NewError("break statement outside loop").
		WithCode(ErrInvalidBreak).
		WithPrimaryLabel(filepath, loc, "not in a loop")
}

// InvalidContinue creates a diagnostic for continue outside a loop.
func InvalidContinue(filepath string, loc *source.Location) *Diagnostic {
	return NewError("continue statement outside loop").
		WithCode(ErrInvalidContinue).
		WithPrimaryLabel(filepath, loc, "not in a loop")
}

// MissingReturn creates a diagnostic for a function without a return at its
// outermost block.
func MissingReturn(filepath string, loc *source.Location, fn string) *Diagnostic {
	return NewError(fmt.Sprintf("function %s should have a return before the end of the outermost block", fn)).
		WithCode(ErrMissingReturn).
		WithPrimaryLabel(filepath, loc, "missing return").
		WithNote("returns nested inside if, while or for blocks do not count").
		WithHelp("add a final return at the end of the function")
}
