// Package loader decodes the parser's serialized program tree into the AST.
//
// The parser hands its output over as a YAML document:
//
//	file: prog.seal
//	decls:
//	  - kind: var
//	    name: counter
//	    type: Int
//	    line: 1
//	  - kind: func
//	    name: main
//	    type: Void
//	    line: 3
//	    body:
//	      vars: [{name: x, type: Int, line: 4}]
//	      stmts:
//	        - kind: expr
//	          line: 5
//	          expr: {kind: assign, name: x, expr: {kind: int, value: "1"}}
//	        - {kind: return, line: 6}
//
// Expressions without a line inherit the line of their parent. Every name is
// interned through the supplied symbol table. A document the parser could not
// have produced (unknown kinds, missing names) is reported as an error.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sealc/internal/frontend/ast"
	"sealc/internal/source"
	"sealc/internal/symbols"
	"sealc/internal/tokens"
)

type rawProgram struct {
	File  string    `yaml:"file"`
	Decls []rawDecl `yaml:"decls"`
}

type rawDecl struct {
	Kind   string    `yaml:"kind"`
	Name   string    `yaml:"name"`
	Type   string    `yaml:"type"`
	Line   int       `yaml:"line"`
	Column int       `yaml:"column"`
	Params []rawVar  `yaml:"params"`
	Body   *rawBlock `yaml:"body"`
}

type rawVar struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
}

type rawBlock struct {
	Line   int       `yaml:"line"`
	Column int       `yaml:"column"`
	Vars   []rawVar  `yaml:"vars"`
	Stmts  []rawStmt `yaml:"stmts"`
}

type rawStmt struct {
	Kind   string    `yaml:"kind"`
	Line   int       `yaml:"line"`
	Column int       `yaml:"column"`
	Vars   []rawVar  `yaml:"vars"`
	Stmts  []rawStmt `yaml:"stmts"`
	Cond   *rawExpr  `yaml:"cond"`
	Then   *rawBlock `yaml:"then"`
	Else   *rawBlock `yaml:"else"`
	Body   *rawBlock `yaml:"body"`
	Init   *rawExpr  `yaml:"init"`
	Post   *rawExpr  `yaml:"post"`
	Value  *rawExpr  `yaml:"value"`
	Expr   *rawExpr  `yaml:"expr"`
}

type rawExpr struct {
	Kind   string     `yaml:"kind"`
	Line   int        `yaml:"line"`
	Column int        `yaml:"column"`
	Value  string     `yaml:"value"`
	Name   string     `yaml:"name"`
	Op     string     `yaml:"op"`
	X      *rawExpr   `yaml:"x"`
	Y      *rawExpr   `yaml:"y"`
	Expr   *rawExpr   `yaml:"expr"`
	Args   []*rawExpr `yaml:"args"`
}

// LoadFile reads and decodes a serialized program tree.
func LoadFile(path string, tab *symbols.Table) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	prog, err := Parse(data, tab)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return prog, nil
}

// Parse decodes a serialized program tree.
func Parse(data []byte, tab *symbols.Table) (*ast.Program, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw rawProgram
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty program tree")
		}
		return nil, fmt.Errorf("parse tree: %w", err)
	}

	b := &builder{tab: tab}
	return b.program(&raw)
}

type builder struct {
	tab *symbols.Table
}

func loc(line, column int) source.Location {
	return source.Location{Start: &source.Position{Line: line, Column: column}}
}

func (b *builder) name(kind, s string, line int) (*symbols.Symbol, error) {
	if s == "" {
		return nil, fmt.Errorf("line %d: %s without a name", line, kind)
	}
	return b.tab.Intern(s), nil
}

func (b *builder) program(raw *rawProgram) (*ast.Program, error) {
	prog := &ast.Program{
		Filename: raw.File,
		Decls:    make([]ast.Decl, 0, len(raw.Decls)),
		Location: loc(1, 0),
	}
	for i := range raw.Decls {
		decl, err := b.decl(&raw.Decls[i])
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog, nil
}

func (b *builder) decl(raw *rawDecl) (ast.Decl, error) {
	switch raw.Kind {
	case "var":
		return b.variable(&rawVar{Name: raw.Name, Type: raw.Type, Line: raw.Line, Column: raw.Column}, "variable")
	case "func":
		name, err := b.name("function", raw.Name, raw.Line)
		if err != nil {
			return nil, err
		}
		ret, err := b.name("function return type", raw.Type, raw.Line)
		if err != nil {
			return nil, err
		}
		fn := &ast.FuncDecl{
			Name:       name,
			ReturnType: ret,
			Params:     make([]*ast.VarDecl, 0, len(raw.Params)),
			Location:   loc(raw.Line, raw.Column),
		}
		for i := range raw.Params {
			p, err := b.variable(&raw.Params[i], "parameter")
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, p)
		}
		if raw.Body == nil {
			return nil, fmt.Errorf("line %d: function %s without a body", raw.Line, raw.Name)
		}
		if fn.Body, err = b.block(raw.Body, raw.Line); err != nil {
			return nil, err
		}
		return fn, nil
	default:
		return nil, fmt.Errorf("line %d: unknown declaration kind %q", raw.Line, raw.Kind)
	}
}

func (b *builder) variable(raw *rawVar, kind string) (*ast.VarDecl, error) {
	name, err := b.name(kind, raw.Name, raw.Line)
	if err != nil {
		return nil, err
	}
	typ, err := b.name(kind+" type", raw.Type, raw.Line)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, Type: typ, Location: loc(raw.Line, raw.Column)}, nil
}

func (b *builder) block(raw *rawBlock, parentLine int) (*ast.Block, error) {
	if raw == nil {
		return &ast.Block{Location: loc(parentLine, 0)}, nil
	}
	return b.blockBody(raw.Vars, raw.Stmts, lineOr(raw.Line, parentLine), raw.Column)
}

func (b *builder) blockBody(vars []rawVar, stmts []rawStmt, line, column int) (*ast.Block, error) {
	block := &ast.Block{
		Vars:     make([]*ast.VarDecl, 0, len(vars)),
		Stmts:    make([]ast.Statement, 0, len(stmts)),
		Location: loc(line, column),
	}
	for i := range vars {
		v := vars[i]
		v.Line = lineOr(v.Line, line)
		decl, err := b.variable(&v, "local variable")
		if err != nil {
			return nil, err
		}
		block.Vars = append(block.Vars, decl)
	}
	for i := range stmts {
		stmt, err := b.stmt(&stmts[i], line)
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	return block, nil
}

func (b *builder) stmt(raw *rawStmt, parentLine int) (ast.Statement, error) {
	line := lineOr(raw.Line, parentLine)
	l := loc(line, raw.Column)

	switch raw.Kind {
	case "block":
		return b.blockBody(raw.Vars, raw.Stmts, line, raw.Column)
	case "if":
		cond, err := b.requiredExpr(raw.Cond, "if condition", line)
		if err != nil {
			return nil, err
		}
		then, err := b.block(raw.Then, line)
		if err != nil {
			return nil, err
		}
		stmt := &ast.IfStmt{Cond: cond, Then: then, Location: l}
		if raw.Else != nil {
			if stmt.Else, err = b.block(raw.Else, line); err != nil {
				return nil, err
			}
		}
		return stmt, nil
	case "while":
		cond, err := b.requiredExpr(raw.Cond, "while condition", line)
		if err != nil {
			return nil, err
		}
		body, err := b.block(raw.Body, line)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Cond: cond, Body: body, Location: l}, nil
	case "for":
		init, err := b.expr(raw.Init, line)
		if err != nil {
			return nil, err
		}
		cond, err := b.expr(raw.Cond, line)
		if err != nil {
			return nil, err
		}
		post, err := b.expr(raw.Post, line)
		if err != nil {
			return nil, err
		}
		body, err := b.block(raw.Body, line)
		if err != nil {
			return nil, err
		}
		return &ast.ForStmt{Init: init, Cond: cond, Post: post, Body: body, Location: l}, nil
	case "return":
		value, err := b.expr(raw.Value, line)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: value, Location: l}, nil
	case "break":
		return &ast.BreakStmt{Location: l}, nil
	case "continue":
		return &ast.ContinueStmt{Location: l}, nil
	case "expr":
		x, err := b.requiredExpr(raw.Expr, "expression statement", line)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: x, Location: l}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown statement kind %q", line, raw.Kind)
	}
}

func (b *builder) requiredExpr(raw *rawExpr, what string, line int) (ast.Expression, error) {
	if raw == nil {
		return nil, fmt.Errorf("line %d: %s is missing", line, what)
	}
	return b.expr(raw, line)
}

// expr converts an optional expression; an absent one becomes the empty placeholder.
func (b *builder) expr(raw *rawExpr, parentLine int) (ast.Expression, error) {
	if raw == nil {
		return &ast.EmptyExpr{Location: loc(parentLine, 0)}, nil
	}
	line := lineOr(raw.Line, parentLine)
	l := loc(line, raw.Column)

	switch raw.Kind {
	case "int":
		return &ast.BasicLit{Kind: ast.INT, Value: raw.Value, Location: l}, nil
	case "float":
		return &ast.BasicLit{Kind: ast.FLOAT, Value: raw.Value, Location: l}, nil
	case "string":
		return &ast.BasicLit{Kind: ast.STRING, Value: raw.Value, Location: l}, nil
	case "bool":
		if raw.Value != "true" && raw.Value != "false" {
			return nil, fmt.Errorf("line %d: invalid bool literal %q", line, raw.Value)
		}
		return &ast.BasicLit{Kind: ast.BOOL, Value: raw.Value, Location: l}, nil
	case "ident":
		name, err := b.name("identifier", raw.Name, line)
		if err != nil {
			return nil, err
		}
		return &ast.IdentifierExpr{Name: name, Location: l}, nil
	case "assign":
		name, err := b.name("assignment", raw.Name, line)
		if err != nil {
			return nil, err
		}
		value, err := b.requiredExpr(raw.Expr, "assigned value", line)
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Name: name, Value: value, Location: l}, nil
	case "unary":
		op := tokens.TOKEN(raw.Op)
		if !tokens.IsUnary(op) {
			return nil, fmt.Errorf("line %d: unknown unary operator %q", line, raw.Op)
		}
		x, err := b.requiredExpr(raw.X, "operand", line)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, X: x, Location: l}, nil
	case "binary":
		op := tokens.TOKEN(raw.Op)
		if !tokens.IsBinary(op) {
			return nil, fmt.Errorf("line %d: unknown binary operator %q", line, raw.Op)
		}
		x, err := b.requiredExpr(raw.X, "left operand", line)
		if err != nil {
			return nil, err
		}
		y, err := b.requiredExpr(raw.Y, "right operand", line)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{X: x, Op: op, Y: y, Location: l}, nil
	case "call":
		name, err := b.name("call", raw.Name, line)
		if err != nil {
			return nil, err
		}
		call := &ast.CallExpr{Name: name, Args: make([]ast.Expression, 0, len(raw.Args)), Location: l}
		for _, a := range raw.Args {
			arg, err := b.requiredExpr(a, "argument", line)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		return call, nil
	case "empty":
		return &ast.EmptyExpr{Location: l}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown expression kind %q", line, raw.Kind)
	}
}

func lineOr(line, fallback int) int {
	if line > 0 {
		return line
	}
	return fallback
}
