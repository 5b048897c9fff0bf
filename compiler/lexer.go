package compiler

import (
	"unicode"
	"unicode/utf8"
)

/*
   Byn Lexer

   - Supports:
     * Keywords (let, say, provide, when, not, end)
     * Identifiers: letter, then letters / digits / '_'. Any Unicode
       letter counts, not only ASCII ones; '_' cannot start a name.
     * String literals: "like this" (no escapes, may span lines)
     * Numbers: digit, then digits and '.' (not validated here)
     * Operators: + - * / == != > < >= <=, assignment '=', colon ':'
     * Any other character becomes a single-character OP token

   - API:
     * NewLexer(source, filename) *Lexer
     * (*Lexer).NextToken() Token
     * Tokenize(source, filename) []Token
*/

type Lexer struct {
	src      string
	filename string

	pos    int // byte index of the rune after ch
	line   int
	column int

	ch    rune // current rune
	width int  // width in bytes of ch
	done  bool
}

func NewLexer(src, filename string) *Lexer {
	l := &Lexer{
		src:      src,
		filename: filename,
		line:     1,
		column:   0,
	}
	l.readRune()
	return l
}

// Tokenize scans src to completion. The result always ends with exactly one
// TOK_EOF token.
func Tokenize(src, filename string) []Token {
	lx := NewLexer(src, filename)
	var toks []Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOK_EOF {
			return toks
		}
	}
}

func (l *Lexer) readRune() {
	if l.done {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.column++

	if l.pos >= len(l.src) {
		l.ch = 0
		l.width = 0
		l.done = true
		return
	}

	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.ch = r
	l.width = w
	l.pos += w
}

func (l *Lexer) peekRune() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// start is the byte offset of the current rune, or len(src) once done.
func (l *Lexer) start() int {
	return l.pos - l.width
}

func (l *Lexer) makeToken(tt TokenType, lexeme string, line, col int) Token {
	return NewToken(tt, lexeme, l.filename, line, col)
}

// NextToken returns the next token from the input. Once the input is
// exhausted every call returns TOK_EOF.
func (l *Lexer) NextToken() Token {
	for !l.done && unicode.IsSpace(l.ch) {
		l.readRune()
	}

	line, col := l.line, l.column

	if l.done {
		return l.makeToken(TOK_EOF, "", line, col)
	}

	if l.ch == '"' {
		return l.lexString()
	}

	if unicode.IsLetter(l.ch) {
		return l.lexIdentOrKeyword()
	}

	if isDigit(l.ch) {
		return l.lexNumber()
	}

	ch := l.ch
	next := l.peekRune()
	l.readRune()

	switch ch {
	case '=':
		if next == '=' {
			l.readRune()
			return l.makeToken(TOK_OP, "==", line, col)
		}
		return l.makeToken(TOK_ASSIGN, "=", line, col)
	case '!', '>', '<':
		if next == '=' {
			l.readRune()
			return l.makeToken(TOK_OP, string(ch)+"=", line, col)
		}
		return l.makeToken(TOK_OP, string(ch), line, col)
	case ':':
		return l.makeToken(TOK_COLON, ":", line, col)
	default:
		// + - * / and anything unrecognised.
		return l.makeToken(TOK_OP, string(ch), line, col)
	}
}

// lexString reads up to the closing quote. An unterminated string runs to the
// end of the input.
func (l *Lexer) lexString() Token {
	line, col := l.line, l.column
	l.readRune() // consume opening quote

	start := l.start()
	for !l.done && l.ch != '"' {
		l.readRune()
	}
	lex := l.src[start:l.start()]

	if !l.done {
		l.readRune() // consume closing quote
	}
	return l.makeToken(TOK_STRING, lex, line, col)
}

func (l *Lexer) lexNumber() Token {
	line, col := l.line, l.column
	start := l.start()

	for !l.done && (isDigit(l.ch) || l.ch == '.') {
		l.readRune()
	}

	return l.makeToken(TOK_NUMBER, l.src[start:l.start()], line, col)
}

func (l *Lexer) lexIdentOrKeyword() Token {
	line, col := l.line, l.column
	start := l.start()

	for !l.done && isIdentChar(l.ch) {
		l.readRune()
	}

	lex := l.src[start:l.start()]
	return l.makeToken(LookupKeyword(lex), lex, line, col)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
