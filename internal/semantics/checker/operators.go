package checker

import (
	"sealc/internal/semantics"
	"sealc/internal/symbols"
	"sealc/internal/tokens"
)

// binaryResult returns the type of x op y, or false when the operand types
// are not accepted by op. Void operands are never accepted.
func binaryResult(op tokens.TOKEN, x, y semantics.Type) (semantics.Type, bool) {
	switch op {
	case tokens.PLUS_TOKEN, tokens.MINUS_TOKEN, tokens.MUL_TOKEN, tokens.DIV_TOKEN:
		if semantics.IsNumeric(x) && semantics.IsNumeric(y) {
			return semantics.Promote(x, y), true
		}
	case tokens.MOD_TOKEN:
		if x == symbols.Int && y == symbols.Int {
			return symbols.Int, true
		}
	case tokens.LESS_TOKEN, tokens.LESS_EQUAL_TOKEN, tokens.GREATER_TOKEN, tokens.GREATER_EQUAL_TOKEN:
		if semantics.IsNumeric(x) && semantics.IsNumeric(y) {
			return symbols.Bool, true
		}
	case tokens.DOUBLE_EQUAL_TOKEN, tokens.NOT_EQUAL_TOKEN:
		if semantics.IsNumeric(x) && semantics.IsNumeric(y) {
			return symbols.Bool, true
		}
		if x == symbols.Bool && y == symbols.Bool {
			return symbols.Bool, true
		}
	case tokens.AND_TOKEN, tokens.OR_TOKEN:
		if x == symbols.Bool && y == symbols.Bool {
			return symbols.Bool, true
		}
	case tokens.BIT_AND_TOKEN, tokens.BIT_OR_TOKEN:
		if x == symbols.Int && y == symbols.Int {
			return symbols.Int, true
		}
	case tokens.BIT_XOR_TOKEN:
		if (x == symbols.Int || x == symbols.Bool) && x == y {
			return x, true
		}
	}
	return nil, false
}

// unaryResult returns the type of op x, or false when op does not accept x.
func unaryResult(op tokens.TOKEN, x semantics.Type) (semantics.Type, bool) {
	switch op {
	case tokens.MINUS_TOKEN:
		if semantics.IsNumeric(x) {
			return x, true
		}
	case tokens.NOT_TOKEN:
		if x == symbols.Bool {
			return symbols.Bool, true
		}
	case tokens.BIT_NOT_TOKEN:
		if x == symbols.Int {
			return symbols.Int, true
		}
	}
	return nil, false
}
