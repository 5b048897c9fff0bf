package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.byn")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		args       []string
		stdin      string
		wantCode   int
		wantOut    string
		errContain string
	}{
		{
			name:     "hello",
			script:   `say "hello"`,
			args:     []string{"run"},
			wantCode: exitOK,
			wantOut:  "hello\n",
		},
		{
			name:     "path without command",
			script:   `let a = 7 let b = 2 say a / b`,
			wantCode: exitOK,
			wantOut:  "3\n",
		},
		{
			name:     "queued input",
			script:   `let x = provide "Enter:" say x + 1`,
			args:     []string{"run", "-i", "5"},
			wantCode: exitOK,
			wantOut:  "Enter: 6\n",
		},
		{
			name:     "stdin input",
			script:   `let x = provide "Enter:" say x * 2`,
			args:     []string{"run"},
			stdin:    "21\n",
			wantCode: exitOK,
			wantOut:  "Enter: 42\n",
		},
		{
			name:     "queued input before stdin",
			script:   `let a = provide "a" let b = provide "b" say a + b`,
			args:     []string{"run", "-i", "x"},
			stdin:    "y\n",
			wantCode: exitOK,
			wantOut:  "a b xy\n",
		},
		{
			name:       "syntax error",
			script:     `say "a" oops say "b"`,
			args:       []string{"run"},
			wantCode:   exitSyntax,
			wantOut:    "",
			errContain: "unknown statement",
		},
		{
			name:       "runtime error keeps earlier output",
			script:     `say "a" say 1 / 0 say "b"`,
			args:       []string{"run"},
			wantCode:   exitRuntime,
			wantOut:    "a\n",
			errContain: "division by zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.script)
			code, out, errOut := runCLI(t, tt.stdin, append(tt.args, path)...)
			require.Equal(t, tt.wantCode, code, errOut)
			require.Equal(t, tt.wantOut, out)
			if tt.errContain != "" {
				require.Contains(t, errOut, tt.errContain)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.byn")
	code, out, errOut := runCLI(t, "", "run", missing)
	require.Equal(t, exitLoad, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "could not open file")
	require.Contains(t, errOut, missing)
}

func TestLexCommand(t *testing.T) {
	path := writeScript(t, "let x = 5")
	code, out, _ := runCLI(t, "", "lex", path)
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "LET"))
	require.Contains(t, lines[0], `"let"`)
	require.Contains(t, lines[0], path+":1:1")
	require.True(t, strings.HasPrefix(lines[4], "EOF"))
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeScript(t, `when 1 : say "a" end`)
	code, out, _ := runCLI(t, "", "analyze", path)
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "kind: when")
	require.Contains(t, out, "kind: say")

	bad := writeScript(t, "let = 1")
	code, out, errOut := runCLI(t, "", "analyze", bad)
	require.Equal(t, exitSyntax, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "expected identifier")
}

func TestFmtCommand(t *testing.T) {
	path := writeScript(t, `let a=1 when a==1 : say "one" not : say "other"`)
	code, out, _ := runCLI(t, "", "fmt", path)
	require.Equal(t, exitOK, code)
	require.Equal(t, "let a = 1\nwhen a == 1 :\n  say \"one\"\nnot :\n  say \"other\"\nend\n", out)
}

func TestVersionCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	require.Equal(t, exitOK, code)
	require.Equal(t, "byn "+version+"\n", out)
}

func TestUsageErrors(t *testing.T) {
	path := writeScript(t, `say 1`)

	code, _, errOut := runCLI(t, "", "run", path, "extra")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "expected one script path")

	code, _, _ = runCLI(t, "", "run", "-Z", path)
	require.Equal(t, exitUsage, code)

	code, _, errOut = runCLI(t, "", "run", "-h")
	require.Equal(t, exitOK, code)
	require.Contains(t, errOut, "Usage:")
}

func TestConfigFile(t *testing.T) {
	script := writeScript(t, `let x = provide "n" say x + 1`)
	cfgPath := filepath.Join(t.TempDir(), "byn.yaml")
	cfg := "script: " + script + "\ninputs:\n  - \"41\"\ncolor: never\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	code, out, errOut := runCLI(t, "", "run", "-c", cfgPath)
	require.Equal(t, exitOK, code, errOut)
	require.Equal(t, "n 42\n", out)
}

func TestConfigFileErrors(t *testing.T) {
	script := writeScript(t, `say 1`)

	code, _, errOut := runCLI(t, "", "run", "-c", filepath.Join(t.TempDir(), "none.yaml"), script)
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "failed to read config file")

	cfgPath := filepath.Join(t.TempDir(), "byn.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("color: sometimes\n"), 0o644))
	code, _, errOut = runCLI(t, "", "run", "-c", cfgPath, script)
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "color must be auto, always or never")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFailure(t *testing.T) {
	path := writeScript(t, `say 1`)
	for _, cmd := range []string{"analyze", "fmt"} {
		t.Run(cmd, func(t *testing.T) {
			var stderr bytes.Buffer
			code := run([]string{cmd, path}, strings.NewReader(""), brokenWriter{}, &stderr)
			require.Equal(t, exitRuntime, code)
			require.Contains(t, stderr.String(), "write failed: disk full")
		})
	}
}
