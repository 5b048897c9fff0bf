package compiler

import "fmt"

type TokenType string

const (
	// Meta / control
	TOK_EOF TokenType = "EOF"

	// Identifiers & literals
	TOK_IDENT  TokenType = "IDENT"
	TOK_STRING TokenType = "STRING"
	TOK_NUMBER TokenType = "NUMBER"

	// Statements / branches
	TOK_LET     TokenType = "LET"
	TOK_SAY     TokenType = "SAY"
	TOK_PROVIDE TokenType = "PROVIDE"
	TOK_WHEN    TokenType = "WHEN"
	TOK_NOT     TokenType = "NOT"
	TOK_END     TokenType = "END"

	// Punctuation / operators
	TOK_ASSIGN TokenType = "ASSIGN" // =
	TOK_COLON  TokenType = "COLON"  // :
	// Any operator symbol, including single characters the lexer does not
	// otherwise recognise.
	TOK_OP TokenType = "OP"
)

// Token is the unified lexical unit used by lexer and parser.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
	File   string
}

func NewToken(t TokenType, lex string, file string, line int, col int) Token {
	return Token{
		Type:   t,
		Lexeme: lex,
		File:   file,
		Line:   line,
		Column: col,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Lexeme, t.Pos())
}

// Pos renders the token position as file:line:col.
func (t Token) Pos() string {
	file := t.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", file, t.Line, t.Column)
}

var keywords = map[string]TokenType{
	"let":     TOK_LET,
	"say":     TOK_SAY,
	"provide": TOK_PROVIDE,
	"when":    TOK_WHEN,
	"not":     TOK_NOT,
	"end":     TOK_END,
}

// LookupKeyword reports the keyword token type for word, or TOK_IDENT.
func LookupKeyword(word string) TokenType {
	if tt, ok := keywords[word]; ok {
		return tt
	}
	return TOK_IDENT
}
