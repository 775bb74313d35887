package diagnostics

// Error codes for the Seal compiler's semantic phase
const (
	// Type checker errors (T prefix)
	ErrTypeMismatch         = "T0001"
	ErrUndefinedSymbol      = "T0002"
	ErrRedeclaredSymbol     = "T0003"
	ErrWrongArgumentCount   = "T0006"
	ErrInvalidReturn        = "T0016"
	ErrMissingReturn        = "T0017"
	ErrInvalidBreak         = "T0019"
	ErrInvalidContinue      = "T0020"
	ErrInvalidType          = "T0021"
	ErrTooManyParams        = "T0028"
	ErrInvalidVoid          = "T0029"
	ErrPrimitiveRedefined   = "T0030"
	ErrMissingMain          = "T0031"
	ErrInvalidMain          = "T0032"
	ErrInvalidPrintArgument = "T0033"
)

// Kind groups error codes into the categories reported to users.
type Kind string

const (
	KindRedefinition       Kind = "redefinition"
	KindUndefinedReference Kind = "undefined reference"
	KindTypeMismatch       Kind = "type mismatch"
	KindArity              Kind = "arity"
	KindInvalidVoidUsage   Kind = "invalid void usage"
	KindMissingMain        Kind = "missing main"
	KindControlFlowMisuse  Kind = "control flow misuse"
	KindMissingReturn      Kind = "missing return"
	KindInvalidSignature   Kind = "invalid signature"
)

var codeKinds = map[string]Kind{
	ErrTypeMismatch:         KindTypeMismatch,
	ErrInvalidReturn:        KindTypeMismatch,
	ErrInvalidPrintArgument: KindTypeMismatch,
	ErrUndefinedSymbol:      KindUndefinedReference,
	ErrRedeclaredSymbol:     KindRedefinition,
	ErrPrimitiveRedefined:   KindRedefinition,
	ErrWrongArgumentCount:   KindArity,
	ErrTooManyParams:        KindArity,
	ErrInvalidVoid:          KindInvalidVoidUsage,
	ErrMissingMain:          KindMissingMain,
	ErrInvalidBreak:         KindControlFlowMisuse,
	ErrInvalidContinue:      KindControlFlowMisuse,
	ErrMissingReturn:        KindMissingReturn,
	ErrInvalidType:          KindInvalidSignature,
	ErrInvalidMain:          KindInvalidSignature,
}

// KindOf returns the category of an error code.
func KindOf(code string) Kind {
	if k, ok := codeKinds[code]; ok {
		return k
	}
	return ""
}
