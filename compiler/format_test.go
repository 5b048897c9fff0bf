package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "statements on one line",
			input: `let a = 7 let b=2 say a/b`,
			want:  "let a = 7\nlet b = 2\nsay a / b\n",
		},
		{
			name:  "provide and quoted literals",
			input: `let n = provide "Name?"   say "hi "+n`,
			want:  "let n = provide \"Name?\"\nsay \"hi \" + n\n",
		},
		{
			name:  "when with both branches",
			input: `when x == 1 : say "one" not : say "other" end`,
			want:  "when x == 1 :\n  say \"one\"\nnot :\n  say \"other\"\nend\n",
		},
		{
			name:  "missing end is made explicit",
			input: `let x = provide "Name?" when x == "bob" : say "hi " + x not : say "who" when 1 : say 2 end`,
			want: `let x = provide "Name?"
when x == "bob" :
  say "hi " + x
not :
  say "who"
  when 1 :
    say 2
  end
end
`,
		},
		{
			name:  "empty true branch",
			input: `when 0 : not : say 1 end`,
			want:  "when 0 :\nnot :\n  say 1\nend\n",
		},
		{
			name:  "empty program",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(mustParse(t, tt.input))
			require.Equal(t, tt.want, got)

			// Formatting is idempotent.
			require.Equal(t, got, Format(mustParse(t, got)))
		})
	}
}

func TestFormatExpr(t *testing.T) {
	prog := mustParse(t, `say a+"b"*3>=c`)
	require.Equal(t, `a + "b" * 3 >= c`, FormatExpr(prog.Statements[0].(*SayStmt).Value))
}
