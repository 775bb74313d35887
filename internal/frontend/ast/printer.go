package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes the tree rooted at node as indented text, one node per line,
// annotating every expression with its resolved type.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.node(node)
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat("  ", p.indent)+format+"\n", args...)
}

func (p *printer) nested(f func()) {
	p.indent++
	f()
	p.indent--
}

func (p *printer) node(node Node) {
	switch n := node.(type) {
	case *Program:
		p.printf("program %s", n.Filename)
		p.nested(func() {
			for _, d := range n.Decls {
				p.node(d)
			}
		})
	case *FuncDecl:
		params := make([]string, 0, len(n.Params))
		for _, v := range n.Params {
			params = append(params, fmt.Sprintf("%s %s", v.Name, v.Type))
		}
		p.printf("func %s(%s) %s @%d", n.Name, strings.Join(params, ", "), n.ReturnType, n.Line())
		if n.Body != nil {
			p.nested(func() { p.node(n.Body) })
		}
	case *VarDecl:
		p.printf("var %s %s @%d", n.Name, n.Type, n.Line())
	case *Block:
		p.printf("block @%d", n.Line())
		p.nested(func() {
			for _, v := range n.Vars {
				p.node(v)
			}
			for _, s := range n.Stmts {
				p.node(s)
			}
		})
	case *IfStmt:
		p.printf("if @%d", n.Line())
		p.nested(func() {
			p.expr(n.Cond)
			if n.Then != nil {
				p.node(n.Then)
			}
			if n.Else != nil {
				p.node(n.Else)
			}
		})
	case *WhileStmt:
		p.printf("while @%d", n.Line())
		p.nested(func() {
			p.expr(n.Cond)
			if n.Body != nil {
				p.node(n.Body)
			}
		})
	case *ForStmt:
		p.printf("for @%d", n.Line())
		p.nested(func() {
			p.expr(n.Init)
			p.expr(n.Cond)
			p.expr(n.Post)
			if n.Body != nil {
				p.node(n.Body)
			}
		})
	case *ReturnStmt:
		p.printf("return @%d", n.Line())
		p.nested(func() { p.expr(n.Value) })
	case *BreakStmt:
		p.printf("break @%d", n.Line())
	case *ContinueStmt:
		p.printf("continue @%d", n.Line())
	case *ExprStmt:
		p.expr(n.X)
	case Expression:
		p.expr(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *printer) expr(e Expression) {
	if e == nil {
		p.printf("<nil>")
		return
	}
	typ := "?"
	if t := e.ResolvedType(); t != nil {
		typ = t.String()
	}

	switch n := e.(type) {
	case *BasicLit:
		value := n.Value
		if n.Kind == STRING {
			value = strconv.Quote(value)
		}
		p.printf("%s %s : %s", n.Kind, value, typ)
	case *IdentifierExpr:
		p.printf("ident %s : %s", n.Name, typ)
	case *AssignExpr:
		p.printf("assign %s : %s", n.Name, typ)
		p.nested(func() { p.expr(n.Value) })
	case *BinaryExpr:
		p.printf("binary %s : %s", n.Op, typ)
		p.nested(func() {
			p.expr(n.X)
			p.expr(n.Y)
		})
	case *UnaryExpr:
		p.printf("unary %s : %s", n.Op, typ)
		p.nested(func() { p.expr(n.X) })
	case *CallExpr:
		p.printf("call %s : %s", n.Name, typ)
		p.nested(func() {
			for _, a := range n.Args {
				p.expr(a)
			}
		})
	case *EmptyExpr:
		p.printf("empty : %s", typ)
	default:
		p.printf("<%T> : %s", e, typ)
	}
}
