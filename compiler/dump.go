package compiler

import "gopkg.in/yaml.v3"

// StmtDump is a serialisable view of a statement, used by `byn analyze`.
type StmtDump struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Line   int         `json:"line" yaml:"line"`
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Prompt string      `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Value  *ExprDump   `json:"value,omitempty" yaml:"value,omitempty"`
	Cond   *ExprDump   `json:"cond,omitempty" yaml:"cond,omitempty"`
	Then   []*StmtDump `json:"then,omitempty" yaml:"then,omitempty"`
	Else   []*StmtDump `json:"else,omitempty" yaml:"else,omitempty"`
}

// ExprDump is a serialisable view of an expression.
type ExprDump struct {
	Kind  string    `json:"kind" yaml:"kind"`
	Type  string    `json:"type,omitempty" yaml:"type,omitempty"`
	Text  string    `json:"text,omitempty" yaml:"text,omitempty"`
	Name  string    `json:"name,omitempty" yaml:"name,omitempty"`
	Op    string    `json:"op,omitempty" yaml:"op,omitempty"`
	Left  *ExprDump `json:"left,omitempty" yaml:"left,omitempty"`
	Right *ExprDump `json:"right,omitempty" yaml:"right,omitempty"`
}

// Dump converts the program to its serialisable view.
func Dump(prog *Program) []*StmtDump {
	return dumpStmts(prog.Statements)
}

// DumpYAML renders the program tree as YAML.
func DumpYAML(prog *Program) ([]byte, error) {
	return yaml.Marshal(map[string]any{
		"file":       prog.File,
		"statements": Dump(prog),
	})
}

func dumpStmts(stmts []Stmt) []*StmtDump {
	out := make([]*StmtDump, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, dumpStmt(stmt))
	}
	return out
}

func dumpStmt(stmt Stmt) *StmtDump {
	d := &StmtDump{Kind: StmtKind(stmt), Line: stmt.StartToken().Line}
	switch s := stmt.(type) {
	case *AssignStmt:
		d.Name = s.Name
		d.Value = dumpExpr(s.Value)
	case *ProvideStmt:
		d.Name = s.Name
		d.Prompt = s.Prompt
	case *SayStmt:
		d.Value = dumpExpr(s.Value)
	case *WhenStmt:
		d.Cond = dumpExpr(s.Cond)
		if len(s.Then) > 0 {
			d.Then = dumpStmts(s.Then)
		}
		if len(s.Else) > 0 {
			d.Else = dumpStmts(s.Else)
		}
	}
	return d
}

func dumpExpr(expr Expr) *ExprDump {
	switch e := expr.(type) {
	case *LiteralExpr:
		typ := "number"
		if e.Kind == TOK_STRING {
			typ = "string"
		}
		return &ExprDump{Kind: "literal", Type: typ, Text: e.Value}
	case *VarExpr:
		return &ExprDump{Kind: "var", Name: e.Name}
	case *BinaryExpr:
		return &ExprDump{Kind: "binary", Op: e.Op, Left: dumpExpr(e.Left), Right: dumpExpr(e.Right)}
	}
	return nil
}
