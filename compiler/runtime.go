package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.jetify.com/typeid"
)

// NewRunID returns a new identifier for one script run.
func NewRunID() string {
	id, err := typeid.WithPrefix("run")
	if err != nil {
		panic(err)
	}
	return id.String()
}

// Options configures an Interpreter.
type Options struct {
	// Out receives say output and provide prompts. Defaults to os.Stdout.
	Out io.Writer
	// In answers provide statements. Defaults to os.Stdin.
	In LineReader
	// Env, when set, is used by every Run instead of a fresh environment.
	Env *Environment
	// Logger receives run and statement traces. Nil discards them.
	Logger *slog.Logger
}

// Interpreter executes parsed programs statement by statement.
type Interpreter struct {
	out    io.Writer
	in     LineReader
	env    *Environment
	shared bool
	logger *slog.Logger
}

func NewInterpreter(opts Options) *Interpreter {
	it := &Interpreter{
		out:    opts.Out,
		in:     opts.In,
		env:    opts.Env,
		shared: opts.Env != nil,
		logger: opts.Logger,
	}
	if it.out == nil {
		it.out = os.Stdout
	}
	if it.in == nil {
		it.in = NewLineReader(os.Stdin)
	}
	if it.env == nil {
		it.env = NewEnvironment()
	}
	if it.logger == nil {
		it.logger = slog.New(slog.DiscardHandler)
	}
	return it
}

// Env returns the environment of the current or most recent run.
func (it *Interpreter) Env() *Environment {
	return it.env
}

// ---- PUBLIC ENTRYPOINTS ----

// RunFile reads, parses and runs the script at path.
func RunFile(path string, opts Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Wrapped: err}
	}
	_, err = RunSource(string(data), path, opts)
	return err
}

// RunSource parses and runs src and returns the final environment. Nothing
// runs when src has a syntax error.
func RunSource(src, filename string, opts Options) (*Environment, error) {
	prog, err := ParseSource(src, filename)
	if err != nil {
		return nil, err
	}
	it := NewInterpreter(opts)
	err = it.Run(prog)
	return it.Env(), err
}

// Run executes prog. Unless Options.Env was given, each call starts from an
// empty environment. The first error stops the run; output already written
// and variables already stored are left as they are.
func (it *Interpreter) Run(prog *Program) error {
	if prog == nil {
		return fmt.Errorf("no program")
	}
	if !it.shared {
		it.env = NewEnvironment()
	}

	log := it.logger.With("run_id", NewRunID(), "file", prog.File)
	log.Info("run started", "statements", len(prog.Statements))

	if err := it.Exec(prog.Statements); err != nil {
		log.Info("run failed", "kind", ClassifyError(err), "error", err)
		return err
	}

	log.Info("run finished", "variables", it.env.Len())
	return nil
}

// ---------------- Statements ----------------

// Exec runs stmts in order against the interpreter's environment.
func (it *Interpreter) Exec(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(stmt Stmt) error {
	start := stmt.StartToken()
	it.logger.Debug("exec", "stmt", StmtKind(stmt), "line", start.Line)

	switch s := stmt.(type) {
	case *AssignStmt:
		v, err := it.Eval(s.Value)
		if err != nil {
			return err
		}
		it.env.Set(s.Name, v)
		return nil

	case *SayStmt:
		v, err := it.Eval(s.Value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(it.out, v.String()); err != nil {
			return &RuntimeError{Token: start, Msg: "write failed", Wrapped: err}
		}
		return nil

	case *ProvideStmt:
		return it.execProvide(s)

	case *WhenStmt:
		cond, err := it.Eval(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return it.Exec(s.Then)
		}
		return it.Exec(s.Else)
	}
	return &RuntimeError{Token: start, Msg: fmt.Sprintf("unsupported statement %T", stmt)}
}

// execProvide prints the prompt and a space, then stores one converted line
// of input. Exhausted input reads as an empty line.
func (it *Interpreter) execProvide(s *ProvideStmt) error {
	if _, err := fmt.Fprint(it.out, s.Prompt+" "); err != nil {
		return &RuntimeError{Token: s.Start, Msg: "write failed", Wrapped: err}
	}

	line, err := it.in.ReadLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return &RuntimeError{Token: s.Start, Msg: "read failed", Wrapped: err}
		}
		it.logger.Debug("input exhausted", "variable", s.Name, "line", s.Start.Line)
		line = ""
	}

	it.env.Set(s.Name, AutoConvert(line))
	return nil
}

// ---------------- Expressions ----------------

// Eval computes the value of expr. Both operands of a binary expression are
// always evaluated.
func (it *Interpreter) Eval(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return AutoConvert(e.Value), nil

	case *VarExpr:
		return it.env.Get(e.Name), nil

	case *BinaryExpr:
		left, err := it.Eval(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := it.Eval(e.Right)
		if err != nil {
			return nil, err
		}
		v, err := ApplyOp(left, e.Op, right)
		if err != nil {
			return nil, &RuntimeError{Token: e.OpTok, Msg: err.Error(), Wrapped: err}
		}
		return v, nil
	}
	return nil, &RuntimeError{Msg: fmt.Sprintf("unsupported expression %T", expr)}
}
