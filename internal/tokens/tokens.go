package tokens

// TOKEN is an operator spelling as produced by the parser.
type TOKEN string

const (
	// arithmetic
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	MOD_TOKEN   TOKEN = "%"
	// relational
	LESS_TOKEN          TOKEN = "<"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_TOKEN       TOKEN = ">"
	GREATER_EQUAL_TOKEN TOKEN = ">="
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	// logical
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	NOT_TOKEN TOKEN = "!"
	// bitwise
	BIT_AND_TOKEN TOKEN = "&"
	BIT_OR_TOKEN  TOKEN = "|"
	BIT_XOR_TOKEN TOKEN = "^"
	BIT_NOT_TOKEN TOKEN = "~"
)

var binaryOperators = map[TOKEN]bool{
	PLUS_TOKEN: true, MINUS_TOKEN: true, MUL_TOKEN: true, DIV_TOKEN: true, MOD_TOKEN: true,
	LESS_TOKEN: true, LESS_EQUAL_TOKEN: true, GREATER_TOKEN: true, GREATER_EQUAL_TOKEN: true,
	DOUBLE_EQUAL_TOKEN: true, NOT_EQUAL_TOKEN: true,
	AND_TOKEN: true, OR_TOKEN: true,
	BIT_AND_TOKEN: true, BIT_OR_TOKEN: true, BIT_XOR_TOKEN: true,
}

var unaryOperators = map[TOKEN]bool{
	MINUS_TOKEN:   true,
	NOT_TOKEN:     true,
	BIT_NOT_TOKEN: true,
}

// IsBinary reports whether op is a valid binary operator.
func IsBinary(op TOKEN) bool { return binaryOperators[op] }

// IsUnary reports whether op is a valid prefix operator.
func IsUnary(op TOKEN) bool { return unaryOperators[op] }
