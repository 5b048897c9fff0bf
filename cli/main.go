package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/RobertP-SyndicateLabs/byn/compiler"
)

const version = "0.1.0"

// Exit statuses.
const (
	exitOK      = 0
	exitLoad    = 1
	exitSyntax  = 2
	exitRuntime = 3
	exitUsage   = 64
)

const optString = "c:i:vCh"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the resolved configuration of one CLI invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *Config
	logger *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// A first argument that is not a command is a script path (or an
	// option) for run; no arguments at all runs the default script.
	cmd := "run"
	if len(args) > 0 {
		switch args[0] {
		case "run", "lex", "analyze", "fmt", "version", "help":
			cmd = args[0]
			args = args[1:]
		}
	}

	switch cmd {
	case "version":
		fmt.Fprintf(stdout, "byn %s\n", version)
		return exitOK
	case "help":
		usage(stderr)
		return exitOK
	}

	a, path, code := setup(cmd, args, stdin, stdout, stderr)
	if a == nil {
		return code
	}

	switch cmd {
	case "lex":
		return a.doLex(path)
	case "analyze":
		return a.doAnalyze(path)
	case "fmt":
		return a.doFmt(path)
	}
	return a.doRun(path)
}

// setup parses options, loads the config file and resolves the script
// path. A nil app means the command is finished with the returned status.
func setup(cmd string, args []string, stdin io.Reader, stdout, stderr io.Writer) (*app, string, int) {
	argv := append([]string{cmd}, args...)
	opts, optind, err := getopt.Getopts(argv, optString)
	if err != nil {
		errorf(stderr, "%v", err)
		usage(stderr)
		return nil, "", exitUsage
	}
	rest := argv[optind:]

	configPath, explicitConfig := defaultConfigFile, false
	var inputs []string
	verbosity := 0
	noColor := false
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath, explicitConfig = opt.Value, true
		case 'i':
			inputs = append(inputs, opt.Value)
		case 'v':
			verbosity++
		case 'C':
			noColor = true
		case 'h':
			usage(stderr)
			return nil, "", exitOK
		}
	}

	cfg, err := LoadConfig(configPath, explicitConfig)
	if err != nil {
		errorf(stderr, "%v", err)
		return nil, "", exitUsage
	}
	cfg.Inputs = append(cfg.Inputs, inputs...)
	switch {
	case verbosity >= 2:
		cfg.LogLevel = "debug"
	case verbosity == 1:
		cfg.LogLevel = "info"
	}
	if noColor {
		cfg.Color = "never"
	}
	applyColor(cfg.Color, stderr)

	if len(rest) > 1 {
		errorf(stderr, "expected one script path, got %d arguments", len(rest))
		usage(stderr)
		return nil, "", exitUsage
	}
	path := cfg.Script
	if len(rest) == 1 {
		path = rest[0]
	}

	level, _ := parseLevel(cfg.LogLevel)
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		logger: newLogger(stderr, level, cfg.Color == "never"),
	}
	return a, path, exitOK
}

func applyColor(mode string, stderr io.Writer) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(stderr)
	}
}

// ---------------- Commands ----------------

func (a *app) doRun(path string) int {
	a.logger.Info("running script", "path", path, "queued_inputs", len(a.cfg.Inputs))
	err := compiler.RunFile(path, compiler.Options{
		Out:    a.stdout,
		In:     compiler.NewQueuedInput(a.cfg.Inputs, compiler.NewLineReader(a.stdin)),
		Logger: a.logger,
	})
	if err != nil {
		return a.fail(err)
	}
	return exitOK
}

func (a *app) doLex(path string) int {
	src, err := loadSource(path)
	if err != nil {
		return a.fail(err)
	}
	for _, tok := range compiler.Tokenize(src, path) {
		fmt.Fprintf(a.stdout, "%-12s %-20q (%s)\n", tok.Type, tok.Lexeme, tok.Pos())
	}
	return exitOK
}

func (a *app) doAnalyze(path string) int {
	prog, err := a.parseFile(path)
	if err != nil {
		return a.fail(err)
	}
	out, err := compiler.DumpYAML(prog)
	if err != nil {
		return a.fail(err)
	}
	if _, err := a.stdout.Write(out); err != nil {
		return a.fail(fmt.Errorf("write failed: %w", err))
	}
	return exitOK
}

func (a *app) doFmt(path string) int {
	prog, err := a.parseFile(path)
	if err != nil {
		return a.fail(err)
	}
	if _, err := fmt.Fprint(a.stdout, compiler.Format(prog)); err != nil {
		return a.fail(fmt.Errorf("write failed: %w", err))
	}
	return exitOK
}

func (a *app) parseFile(path string) (*compiler.Program, error) {
	src, err := loadSource(path)
	if err != nil {
		return nil, err
	}
	prog, err := compiler.ParseSource(src, path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("parsed script", "path", path, "statements", len(prog.Statements))
	return prog, nil
}

func loadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &compiler.LoadError{Path: path, Wrapped: err}
	}
	return string(data), nil
}

// fail reports err and maps it to an exit status.
func (a *app) fail(err error) int {
	errorf(a.stderr, "%v", err)
	switch compiler.ClassifyError(err) {
	case compiler.ErrorKindLoad:
		return exitLoad
	case compiler.ErrorKindSyntax:
		return exitSyntax
	}
	return exitRuntime
}

func errorf(w io.Writer, format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(w, "Error: "+format+"\n", args...)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `byn - run Byn scripts

Usage:
  byn [run] [options] [file.byn]
  byn lex [options] [file.byn]
  byn analyze [options] [file.byn]
  byn fmt [options] [file.byn]
  byn version

Commands:
  run       Execute the script (default command)
  lex       Print the token stream
  analyze   Print the syntax tree as YAML
  fmt       Print the script in canonical layout

Options:
  -c path   Config file (default %s)
  -i line   Queue an input line for provide (repeatable)
  -v        Verbose logging to stderr (-v info, -vv debug)
  -C        Disable colour
  -h        Show this help

Without a file argument the config "script" key is used, then %s.
`, defaultConfigFile, defaultScript)
}
