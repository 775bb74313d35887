// Package symbols interns identifiers.
//
// Every name in a program is represented by exactly one *Symbol per Table, so
// names and types are compared by pointer identity. The five built-in types are
// themselves symbols: a declared type IS the symbol Int, Float, String, Bool or
// Void, shared by every table.
package symbols

// Symbol is an interned identifier. Compare symbols with ==, never by name.
type Symbol struct {
	name string
}

func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// Predefined symbols, seeded into every table.
var (
	Int    = &Symbol{name: "Int"}
	Float  = &Symbol{name: "Float"}
	String = &Symbol{name: "String"}
	Bool   = &Symbol{name: "Bool"}
	Void   = &Symbol{name: "Void"}
	Main   = &Symbol{name: "main"}
	Print  = &Symbol{name: "printf"}
)

var predefined = []*Symbol{Int, Float, String, Bool, Void, Main, Print}

// IsType reports whether s names one of the five built-in types.
func IsType(s *Symbol) bool {
	switch s {
	case Int, Float, String, Bool, Void:
		return true
	default:
		return false
	}
}

// Table interns strings into symbols.
type Table struct {
	byName map[string]*Symbol
}

// NewTable creates a table seeded with the predefined symbols.
func NewTable() *Table {
	t := &Table{byName: make(map[string]*Symbol, 64)}
	for _, sym := range predefined {
		t.byName[sym.name] = sym
	}
	return t
}

// Intern returns the unique symbol for name, creating it on first use.
func (t *Table) Intern(name string) *Symbol {
	if sym, ok := t.byName[name]; ok {
		return sym
	}
	sym := &Symbol{name: name}
	t.byName[name] = sym
	return sym
}

// Len returns the number of interned symbols, predefined ones included.
func (t *Table) Len() int { return len(t.byName) }
