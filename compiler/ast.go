package compiler

// -------- AST TYPES --------
//
// Stmt and Expr are closed sets: the unexported marker methods keep other
// packages from adding variants, so a type switch over the types below is
// exhaustive. Nodes are never mutated after the parser builds them.

// Program is a parsed script.
type Program struct {
	File       string
	Statements []Stmt
}

type Stmt interface {
	stmtNode()
	// StartToken is the first token of the statement.
	StartToken() Token
}

type Expr interface {
	exprNode()
	StartToken() Token
}

// AssignStmt is `let <Name> = <Value>`.
type AssignStmt struct {
	Start Token
	Name  string
	Value Expr
}

// SayStmt is `say <Value>`.
type SayStmt struct {
	Start Token
	Value Expr
}

// ProvideStmt is `let <Name> = provide "<Prompt>"`.
type ProvideStmt struct {
	Start  Token
	Name   string
	Prompt string
}

// WhenStmt is `when <Cond> : <Then> [not : <Else>] [end]`.
type WhenStmt struct {
	Start Token
	Cond  Expr
	Then  []Stmt
	Else  []Stmt
}

func (*AssignStmt) stmtNode()  {}
func (*SayStmt) stmtNode()     {}
func (*ProvideStmt) stmtNode() {}
func (*WhenStmt) stmtNode()    {}

func (s *AssignStmt) StartToken() Token  { return s.Start }
func (s *SayStmt) StartToken() Token     { return s.Start }
func (s *ProvideStmt) StartToken() Token { return s.Start }
func (s *WhenStmt) StartToken() Token    { return s.Start }

// LiteralExpr holds the raw spelling of a NUMBER or STRING token. Kind
// records which one; the runtime type is decided by AutoConvert.
type LiteralExpr struct {
	Tok   Token
	Kind  TokenType
	Value string
}

// VarExpr is a variable reference resolved at evaluation time.
type VarExpr struct {
	Tok  Token
	Name string
}

// BinaryExpr is `<Left> <Op> <Right>`.
type BinaryExpr struct {
	OpTok Token
	Left  Expr
	Op    string
	Right Expr
}

func (*LiteralExpr) exprNode() {}
func (*VarExpr) exprNode()     {}
func (*BinaryExpr) exprNode()  {}

func (e *LiteralExpr) StartToken() Token { return e.Tok }
func (e *VarExpr) StartToken() Token     { return e.Tok }
func (e *BinaryExpr) StartToken() Token  { return e.Left.StartToken() }

// StmtKind names a statement variant, for logs and tree dumps.
func StmtKind(s Stmt) string {
	switch s.(type) {
	case *AssignStmt:
		return "assign"
	case *SayStmt:
		return "say"
	case *ProvideStmt:
		return "provide"
	case *WhenStmt:
		return "when"
	}
	return "unknown"
}
