package ast

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node before its children. If f returns false the children of that
// node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
	case *FuncDecl:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *VarDecl:
		// leaf
	case *Block:
		for _, v := range n.Vars {
			Inspect(v, f)
		}
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *IfStmt:
		inspectExpr(n.Cond, f)
		if n.Then != nil {
			Inspect(n.Then, f)
		}
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *WhileStmt:
		inspectExpr(n.Cond, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *ForStmt:
		inspectExpr(n.Init, f)
		inspectExpr(n.Cond, f)
		inspectExpr(n.Post, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *ReturnStmt:
		inspectExpr(n.Value, f)
	case *ExprStmt:
		inspectExpr(n.X, f)
	case *AssignExpr:
		inspectExpr(n.Value, f)
	case *BinaryExpr:
		inspectExpr(n.X, f)
		inspectExpr(n.Y, f)
	case *UnaryExpr:
		inspectExpr(n.X, f)
	case *CallExpr:
		for _, a := range n.Args {
			inspectExpr(a, f)
		}
	}
}

// inspectExpr avoids passing a typed nil expression through the Node interface.
func inspectExpr(e Expression, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

// Expressions returns every expression in the tree in depth-first order.
func Expressions(root Node) []Expression {
	var out []Expression
	Inspect(root, func(n Node) bool {
		if e, ok := n.(Expression); ok {
			out = append(out, e)
		}
		return true
	})
	return out
}
