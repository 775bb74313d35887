// Package table implements the nested scope stack used for name resolution.
package table

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"sealc/internal/symbols"
)

// ScopeKind tags the namespace layer a scope belongs to.
type ScopeKind int

const (
	ScopeGlobal   ScopeKind = iota // global variables
	ScopeFunction                  // global functions
	ScopeFormal                    // formal parameters of the function being checked
	ScopeLocal                     // variables of a nested block
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeFormal:
		return "parameter"
	case ScopeLocal:
		return "local"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyDeclared = errors.New("symbol already declared in this scope")
	ErrNoScope         = errors.New("no scope is open")
)

// Scope is one layer of name-to-value bindings.
type Scope[V any] struct {
	Kind    ScopeKind
	entries map[*symbols.Symbol]V
	order   []*symbols.Symbol
}

func newScope[V any](kind ScopeKind) *Scope[V] {
	return &Scope[V]{
		Kind:    kind,
		entries: make(map[*symbols.Symbol]V),
	}
}

// Get returns the binding of name in this scope only.
func (s *Scope[V]) Get(name *symbols.Symbol) (V, bool) {
	v, ok := s.entries[name]
	return v, ok
}

// Names returns the bound names in declaration order.
func (s *Scope[V]) Names() []*symbols.Symbol {
	return append([]*symbols.Symbol(nil), s.order...)
}

// Len returns the number of bindings in this scope.
func (s *Scope[V]) Len() int { return len(s.order) }

// Stack is a strict stack of scopes. Lookups walk from the innermost scope
// outwards, so inner bindings shadow outer ones.
type Stack[V any] struct {
	scopes *arraystack.Stack
}

// New creates an empty stack. Push a scope before declaring anything.
func New[V any]() *Stack[V] {
	return &Stack[V]{scopes: arraystack.New()}
}

// Push opens a new innermost scope.
func (s *Stack[V]) Push(kind ScopeKind) {
	s.scopes.Push(newScope[V](kind))
}

// Pop closes the innermost scope and returns it.
func (s *Stack[V]) Pop() (*Scope[V], error) {
	top, ok := s.scopes.Pop()
	if !ok {
		return nil, ErrNoScope
	}
	return top.(*Scope[V]), nil
}

// Depth returns the number of open scopes.
func (s *Stack[V]) Depth() int { return s.scopes.Size() }

// Innermost returns the innermost open scope.
func (s *Stack[V]) Innermost() (*Scope[V], bool) {
	top, ok := s.scopes.Peek()
	if !ok {
		return nil, false
	}
	return top.(*Scope[V]), true
}

// Outermost returns the bottom scope of the stack.
func (s *Stack[V]) Outermost() (*Scope[V], bool) {
	values := s.scopes.Values() // top first
	if len(values) == 0 {
		return nil, false
	}
	return values[len(values)-1].(*Scope[V]), true
}

// Declare binds name in the innermost scope. It fails with ErrAlreadyDeclared
// when the innermost scope already binds name; outer bindings are ignored.
func (s *Stack[V]) Declare(name *symbols.Symbol, value V) error {
	scope, ok := s.Innermost()
	if !ok {
		return ErrNoScope
	}
	if _, exists := scope.entries[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrAlreadyDeclared)
	}
	scope.entries[name] = value
	scope.order = append(scope.order, name)
	return nil
}

// Probe looks name up in the innermost scope only.
func (s *Stack[V]) Probe(name *symbols.Symbol) (V, bool) {
	scope, ok := s.Innermost()
	if !ok {
		var zero V
		return zero, false
	}
	return scope.Get(name)
}

// Lookup resolves name from the innermost scope outwards and reports the kind
// of the scope that bound it.
func (s *Stack[V]) Lookup(name *symbols.Symbol) (V, ScopeKind, bool) {
	// arraystack iterates from the top of the stack down
	it := s.scopes.Iterator()
	for it.Next() {
		scope := it.Value().(*Scope[V])
		if v, ok := scope.entries[name]; ok {
			return v, scope.Kind, true
		}
	}
	var zero V
	return zero, 0, false
}
