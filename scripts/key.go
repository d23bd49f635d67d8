package scripts

import (
	"fmt"
	"strings"

	"go.starlark.net/syntax"
)

// Key is the normalized structural form of a statement. Two statements
// with the same key are computationally interchangeable: positions,
// comments, and token-level formatting (1_000 vs 1000) do not
// contribute to it.
type Key string

func NormalizeStmt(stmt syntax.Stmt) Key {
	var b strings.Builder
	writeNode(&b, stmt)
	return Key(b.String())
}

func writeNode(b *strings.Builder, node syntax.Node) {
	if node == nil {
		b.WriteString("_")
		return
	}

	switch n := node.(type) {

	case *syntax.AssignStmt:
		fmt.Fprintf(b, "(assign %s ", n.Op)
		writeNode(b, n.LHS)
		b.WriteString(" ")
		writeNode(b, n.RHS)
		b.WriteString(")")

	case *syntax.BranchStmt:
		fmt.Fprintf(b, "(branch %s)", n.Token)

	case *syntax.DefStmt:
		fmt.Fprintf(b, "(def %s ", n.Name.Name)
		writeNodes(b, exprNodes(n.Params))
		b.WriteString(" ")
		writeNodes(b, stmtNodes(n.Body))
		b.WriteString(")")

	case *syntax.ExprStmt:
		b.WriteString("(expr ")
		writeNode(b, n.X)
		b.WriteString(")")

	case *syntax.ForStmt:
		b.WriteString("(for ")
		writeNode(b, n.Vars)
		b.WriteString(" ")
		writeNode(b, n.X)
		b.WriteString(" ")
		writeNodes(b, stmtNodes(n.Body))
		b.WriteString(")")

	case *syntax.WhileStmt:
		b.WriteString("(while ")
		writeNode(b, n.Cond)
		b.WriteString(" ")
		writeNodes(b, stmtNodes(n.Body))
		b.WriteString(")")

	case *syntax.IfStmt:
		b.WriteString("(if ")
		writeNode(b, n.Cond)
		b.WriteString(" ")
		writeNodes(b, stmtNodes(n.True))
		b.WriteString(" ")
		writeNodes(b, stmtNodes(n.False))
		b.WriteString(")")

	case *syntax.LoadStmt:
		b.WriteString("(load ")
		writeNode(b, n.Module)
		for i, from := range n.From {
			fmt.Fprintf(b, " %s=%s", n.To[i].Name, from.Name)
		}
		b.WriteString(")")

	case *syntax.ReturnStmt:
		b.WriteString("(return ")
		writeNode(b, n.Result)
		b.WriteString(")")

	case *syntax.BinaryExpr:
		fmt.Fprintf(b, "(binary %s ", n.Op)
		writeNode(b, n.X)
		b.WriteString(" ")
		writeNode(b, n.Y)
		b.WriteString(")")

	case *syntax.CallExpr:
		b.WriteString("(call ")
		writeNode(b, n.Fn)
		b.WriteString(" ")
		writeNodes(b, exprNodes(n.Args))
		b.WriteString(")")

	case *syntax.Comprehension:
		if n.Curly {
			b.WriteString("(comp-dict ")
		} else {
			b.WriteString("(comp-list ")
		}
		writeNode(b, n.Body)
		b.WriteString(" ")
		writeNodes(b, n.Clauses)
		b.WriteString(")")

	case *syntax.ForClause:
		b.WriteString("(for-clause ")
		writeNode(b, n.Vars)
		b.WriteString(" ")
		writeNode(b, n.X)
		b.WriteString(")")

	case *syntax.IfClause:
		b.WriteString("(if-clause ")
		writeNode(b, n.Cond)
		b.WriteString(")")

	case *syntax.CondExpr:
		b.WriteString("(cond ")
		writeNode(b, n.Cond)
		b.WriteString(" ")
		writeNode(b, n.True)
		b.WriteString(" ")
		writeNode(b, n.False)
		b.WriteString(")")

	case *syntax.DictEntry:
		b.WriteString("(entry ")
		writeNode(b, n.Key)
		b.WriteString(" ")
		writeNode(b, n.Value)
		b.WriteString(")")

	case *syntax.DictExpr:
		b.WriteString("(dict ")
		writeNodes(b, exprNodes(n.List))
		b.WriteString(")")

	case *syntax.DotExpr:
		b.WriteString("(dot ")
		writeNode(b, n.X)
		fmt.Fprintf(b, " %s)", n.Name.Name)

	case *syntax.Ident:
		fmt.Fprintf(b, "(ident %s)", n.Name)

	case *syntax.IndexExpr:
		b.WriteString("(index ")
		writeNode(b, n.X)
		b.WriteString(" ")
		writeNode(b, n.Y)
		b.WriteString(")")

	case *syntax.LambdaExpr:
		b.WriteString("(lambda ")
		writeNodes(b, exprNodes(n.Params))
		b.WriteString(" ")
		writeNode(b, n.Body)
		b.WriteString(")")

	case *syntax.ListExpr:
		b.WriteString("(list ")
		writeNodes(b, exprNodes(n.List))
		b.WriteString(")")

	case *syntax.Literal:
		// Value, not Raw: literal formatting must not affect the key
		fmt.Fprintf(b, "(lit %s %v)", n.Token, n.Value)

	case *syntax.ParenExpr:
		// parentheses are structural noise
		writeNode(b, n.X)

	case *syntax.SliceExpr:
		b.WriteString("(slice ")
		writeNode(b, n.X)
		b.WriteString(" ")
		writeNode(b, n.Lo)
		b.WriteString(" ")
		writeNode(b, n.Hi)
		b.WriteString(" ")
		writeNode(b, n.Step)
		b.WriteString(")")

	case *syntax.TupleExpr:
		b.WriteString("(tuple ")
		writeNodes(b, exprNodes(n.List))
		b.WriteString(")")

	case *syntax.UnaryExpr:
		fmt.Fprintf(b, "(unary %s ", n.Op)
		writeNode(b, n.X)
		b.WriteString(")")

	default:
		fmt.Fprintf(b, "(%T)", node)
	}
}

func writeNodes(b *strings.Builder, nodes []syntax.Node) {
	b.WriteString("[")
	for i, node := range nodes {
		if i > 0 {
			b.WriteString(" ")
		}
		writeNode(b, node)
	}
	b.WriteString("]")
}

func exprNodes(exprs []syntax.Expr) []syntax.Node {
	nodes := make([]syntax.Node, len(exprs))
	for i, expr := range exprs {
		nodes[i] = expr
	}
	return nodes
}

func stmtNodes(stmts []syntax.Stmt) []syntax.Node {
	nodes := make([]syntax.Node, len(stmts))
	for i, stmt := range stmts {
		nodes[i] = stmt
	}
	return nodes
}
