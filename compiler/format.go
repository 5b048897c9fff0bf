package compiler

import "strings"

const indentUnit = "  "

// Format prints prog in canonical layout: one statement per line, branch
// bodies indented, every when closed with an explicit end. Parsing the
// output yields the same tree.
func Format(prog *Program) string {
	var b strings.Builder
	writeStmts(&b, prog.Statements, 0)
	return b.String()
}

func writeStmts(b *strings.Builder, stmts []Stmt, depth int) {
	for _, stmt := range stmts {
		writeStmt(b, stmt, depth)
	}
}

func writeStmt(b *strings.Builder, stmt Stmt, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent)

	switch s := stmt.(type) {
	case *AssignStmt:
		b.WriteString("let " + s.Name + " = " + FormatExpr(s.Value))
	case *ProvideStmt:
		b.WriteString("let " + s.Name + " = provide " + quote(s.Prompt))
	case *SayStmt:
		b.WriteString("say " + FormatExpr(s.Value))
	case *WhenStmt:
		b.WriteString("when " + FormatExpr(s.Cond) + " :\n")
		writeStmts(b, s.Then, depth+1)
		if len(s.Else) > 0 {
			b.WriteString(indent + "not :\n")
			writeStmts(b, s.Else, depth+1)
		}
		b.WriteString(indent + "end")
	}
	b.WriteString("\n")
}

// FormatExpr prints an expression on one line. Binary chains need no
// parentheses because the right operand is always a single primary.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		if e.Kind == TOK_STRING {
			return quote(e.Value)
		}
		return e.Value
	case *VarExpr:
		return e.Name
	case *BinaryExpr:
		return FormatExpr(e.Left) + " " + e.Op + " " + FormatExpr(e.Right)
	}
	return ""
}

func quote(s string) string {
	return "\"" + s + "\""
}
