package semantics

import "sealc/internal/symbols"

// Type is a built-in type tag. Type values are the predefined type symbols,
// compared by identity.
type Type = *symbols.Symbol

// IsNumeric reports whether t is Int or Float.
func IsNumeric(t Type) bool {
	return t == symbols.Int || t == symbols.Float
}

// IsValueType reports whether a variable, parameter or operand may have type t.
func IsValueType(t Type) bool {
	return symbols.IsType(t) && t != symbols.Void
}

// Promote returns the result type of an arithmetic operator applied to two
// numeric operands: Int when both are Int, Float otherwise.
func Promote(a, b Type) Type {
	if a == symbols.Int && b == symbols.Int {
		return symbols.Int
	}
	return symbols.Float
}

// TypeString renders a possibly unset type.
func TypeString(t Type) string {
	if t == nil {
		return "unknown"
	}
	return t.String()
}
