package compiler

import (
	"fmt"
	"strings"
)

// -------- PARSER CORE --------
//
// Grammar:
//
//	program     := statement* EOF
//	statement   := assignStmt | sayStmt | whenStmt
//	assignStmt  := LET IDENT ASSIGN (PROVIDE STRING | expr)
//	sayStmt     := SAY expr
//	whenStmt    := WHEN expr COLON statement* (NOT COLON statement*)? END?
//	expr        := primary (OP primary)*
//	primary     := NUMBER | STRING | IDENT
//
// Operators share a single precedence level and chain left to right, so
// `a + b * c` is `(a + b) * c`. The closing END of a when block is optional:
// without it the branch runs until NOT, END or EOF.

type Parser struct {
	tokens []Token
	pos    int
}

// NewParser returns a parser over tokens. A TOK_EOF terminator is appended
// when tokens does not already end with one.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TOK_EOF {
		eof := Token{Type: TOK_EOF}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eof.File, eof.Line, eof.Column = last.File, last.Line, last.Column
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &Parser{tokens: tokens}
}

// Parse parses a complete token sequence.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).ParseProgram()
}

// ParseSource tokenizes and parses src.
func ParseSource(src, filename string) (*Program, error) {
	return Parse(Tokenize(src, filename))
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

// advance returns the current token and moves on. It never moves past EOF.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TOK_EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(tt TokenType, context string) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, syntaxErrorf(tok, "expected %s %s, got %s", describe(tt), context, describeToken(tok))
	}
	return tok, nil
}

// -------- TOP-LEVEL PARSE --------

// ParseProgram parses statements up to EOF. The first error ends the parse.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{File: p.tokens[0].File}
	for p.peek().Type != TOK_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.advance()
	switch tok.Type {
	case TOK_LET:
		return p.parseLet(tok)
	case TOK_SAY:
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &SayStmt{Start: tok, Value: value}, nil
	case TOK_WHEN:
		return p.parseWhen(tok)
	}
	return nil, syntaxErrorf(tok, "unknown statement: %s", describeToken(tok))
}

// -------- STATEMENTS --------

func (p *Parser) parseLet(start Token) (Stmt, error) {
	// let name = provide "prompt"
	// let name = expr
	name, err := p.expect(TOK_IDENT, "after let")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOK_ASSIGN, "after variable name"); err != nil {
		return nil, err
	}

	if p.peek().Type == TOK_PROVIDE {
		p.advance()
		prompt, err := p.expect(TOK_STRING, "after provide")
		if err != nil {
			return nil, err
		}
		return &ProvideStmt{Start: start, Name: name.Lexeme, Prompt: prompt.Lexeme}, nil
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Start: start, Name: name.Lexeme, Value: value}, nil
}

func (p *Parser) parseWhen(start Token) (Stmt, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOK_COLON, "after condition"); err != nil {
		return nil, err
	}

	when := &WhenStmt{Start: start, Cond: cond}

	when.Then, err = p.parseBlock(TOK_NOT, TOK_END)
	if err != nil {
		return nil, err
	}

	if p.peek().Type == TOK_NOT {
		p.advance()
		if _, err := p.expect(TOK_COLON, "after not"); err != nil {
			return nil, err
		}
		when.Else, err = p.parseBlock(TOK_END)
		if err != nil {
			return nil, err
		}
	}

	if p.peek().Type == TOK_END {
		p.advance()
	}
	return when, nil
}

// parseBlock collects statements until one of stops or EOF.
func (p *Parser) parseBlock(stops ...TokenType) ([]Stmt, error) {
	var stmts []Stmt
	for !p.at(stops...) && p.peek().Type != TOK_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) at(types ...TokenType) bool {
	cur := p.peek().Type
	for _, tt := range types {
		if cur == tt {
			return true
		}
	}
	return false
}

// -------- EXPRESSIONS --------

func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TOK_OP {
		op := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{OpTok: op, Left: left, Op: op.Lexeme, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TOK_NUMBER, TOK_STRING:
		return &LiteralExpr{Tok: tok, Kind: tok.Type, Value: tok.Lexeme}, nil
	case TOK_IDENT:
		return &VarExpr{Tok: tok, Name: tok.Lexeme}, nil
	}
	return nil, syntaxErrorf(tok, "unexpected %s in expression", describeToken(tok))
}

// -------- HELPERS --------

func describe(tt TokenType) string {
	switch tt {
	case TOK_IDENT:
		return "identifier"
	case TOK_STRING:
		return "string"
	case TOK_NUMBER:
		return "number"
	case TOK_ASSIGN:
		return "'='"
	case TOK_COLON:
		return "':'"
	case TOK_OP:
		return "operator"
	case TOK_EOF:
		return "end of input"
	}
	return "'" + strings.ToLower(string(tt)) + "'"
}

func describeToken(tok Token) string {
	switch tok.Type {
	case TOK_EOF, TOK_ASSIGN, TOK_COLON:
		return describe(tok.Type)
	case TOK_IDENT, TOK_STRING, TOK_NUMBER, TOK_OP:
		return fmt.Sprintf("%s %q", describe(tok.Type), tok.Lexeme)
	}
	return fmt.Sprintf("keyword %q", tok.Lexeme)
}
