package symbols

import "testing"

func TestInternReturnsSameSymbol(t *testing.T) {
	tab := NewTable()
	a := tab.Intern("counter")
	b := tab.Intern("counter")
	if a != b {
		t.Fatal("Expected interning the same name twice to return the same symbol")
	}
	if a.String() != "counter" {
		t.Errorf("Expected name counter, got %s", a)
	}
	if c := tab.Intern("other"); c == a {
		t.Error("Expected distinct names to intern to distinct symbols")
	}
}

func TestPredefinedSymbolsAreShared(t *testing.T) {
	t1 := NewTable()
	t2 := NewTable()

	for _, name := range []string{"Int", "Float", "String", "Bool", "Void", "main", "printf"} {
		a := t1.Intern(name)
		b := t2.Intern(name)
		if a != b {
			t.Errorf("Expected %s to be the same symbol in every table", name)
		}
	}
	if t1.Intern("Int") != Int {
		t.Error("Expected Intern(\"Int\") to return the Int type symbol")
	}
	if t1.Intern("printf") != Print {
		t.Error("Expected Intern(\"printf\") to return the print primitive")
	}
}

func TestInternGrowsTableOnce(t *testing.T) {
	tab := NewTable()
	if tab.Len() != len(predefined) {
		t.Fatalf("Expected %d predefined symbols, got %d", len(predefined), tab.Len())
	}
	tab.Intern("x")
	tab.Intern("y")
	tab.Intern("x")
	tab.Intern("Int")
	if tab.Len() != len(predefined)+2 {
		t.Errorf("Expected %d symbols, got %d", len(predefined)+2, tab.Len())
	}
}

func TestIsType(t *testing.T) {
	tab := NewTable()
	for _, sym := range []*Symbol{Int, Float, String, Bool, Void} {
		if !IsType(sym) {
			t.Errorf("Expected %s to be a type", sym)
		}
	}
	for _, sym := range []*Symbol{Main, Print, tab.Intern("Integer")} {
		if IsType(sym) {
			t.Errorf("Expected %s not to be a type", sym)
		}
	}
}
