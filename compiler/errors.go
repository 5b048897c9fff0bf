package compiler

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure of a script run.
type ErrorKind string

const (
	ErrorKindLoad    ErrorKind = "load"
	ErrorKindSyntax  ErrorKind = "syntax"
	ErrorKindRuntime ErrorKind = "runtime"
	ErrorKindUnknown ErrorKind = "unknown"
)

// SyntaxError is raised by the parser on a missing or unexpected token.
type SyntaxError struct {
	Token Token
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Token.Pos(), e.Msg)
}

func syntaxErrorf(tok Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Token: tok, Msg: fmt.Sprintf(format, args...)}
}

// RuntimeError is raised by the interpreter. Wrapped holds the underlying
// cause when there is one, e.g. a numeric parse failure.
type RuntimeError struct {
	Token   Token
	Msg     string
	Wrapped error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %s: %s", e.Token.Pos(), e.Msg)
}

func (e *RuntimeError) Unwrap() error {
	return e.Wrapped
}

// LoadError reports a script that could not be read.
type LoadError struct {
	Path    string
	Wrapped error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not open file %s: %v", e.Path, e.Wrapped)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

// ErrDivisionByZero is wrapped by the RuntimeError for `x / 0`.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNotANumber is returned when an ordering operand has no leading number.
var ErrNotANumber = errors.New("not a number")

// ClassifyError reports which stage of a run produced err.
func ClassifyError(err error) ErrorKind {
	var loadErr *LoadError
	var syntaxErr *SyntaxError
	var runtimeErr *RuntimeError
	switch {
	case errors.As(err, &loadErr):
		return ErrorKindLoad
	case errors.As(err, &syntaxErr):
		return ErrorKindSyntax
	case errors.As(err, &runtimeErr):
		return ErrorKindRuntime
	}
	return ErrorKindUnknown
}
