package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDump(t *testing.T) {
	prog := mustParse(t, "let n = provide \"n?\"\nwhen n > 1 :\n  say \"big\" + n\nend")

	want := []*StmtDump{
		{Kind: "provide", Line: 1, Name: "n", Prompt: "n?"},
		{
			Kind: "when",
			Line: 2,
			Cond: &ExprDump{
				Kind:  "binary",
				Op:    ">",
				Left:  &ExprDump{Kind: "var", Name: "n"},
				Right: &ExprDump{Kind: "literal", Type: "number", Text: "1"},
			},
			Then: []*StmtDump{
				{
					Kind: "say",
					Line: 3,
					Value: &ExprDump{
						Kind:  "binary",
						Op:    "+",
						Left:  &ExprDump{Kind: "literal", Type: "string", Text: "big"},
						Right: &ExprDump{Kind: "var", Name: "n"},
					},
				},
			},
		},
	}
	require.Equal(t, want, Dump(prog))
}

func TestDumpYAML(t *testing.T) {
	prog := mustParse(t, `let a = 1 + b`)

	out, err := DumpYAML(prog)
	require.NoError(t, err)

	var decoded struct {
		File       string      `yaml:"file"`
		Statements []*StmtDump `yaml:"statements"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, "test.byn", decoded.File)
	require.Equal(t, Dump(prog), decoded.Statements)
	require.Contains(t, string(out), "kind: assign")
}
