package leetdoc_test

import (
	"testing"

	"github.com/fwojciec/leetdoc"
	"github.com/stretchr/testify/assert"
)

func TestStripLineNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "drops lines holding only a number",
			input: "a = 1\n  42  \nb = 2",
			want:  "a = 1\nb = 2",
		},
		{
			name:  "keeps indentation after a single separating space",
			input: "    1  x = 1",
			want:  "     x = 1",
		},
		{
			name:  "recovers nested indentation from space-separated numbers",
			input: "1 class Solution:\n2     def twoSum(self):\n3         return []",
			want:  "class Solution:\n    def twoSum(self):\n        return []",
		},
		{
			name:  "keeps every space after a dot as indentation",
			input: "1.def f():\n2.    return 1",
			want:  "def f():\n    return 1",
		},
		{
			name:  "removes numbers attached to identifiers",
			input: "1class Solution {\n2public:\n3}",
			want:  "class Solution {\npublic:\n}",
		},
		{
			name:  "removes numbers attached to brackets",
			input: "10{\n11(x)\n12[0]",
			want:  "{\n(x)\n[0]",
		},
		{
			name:  "removes pipe separated numbers",
			input: "1|int x;\n2|    x++;",
			want:  "int x;\n    x++;",
		},
		{
			name:  "removes colon separated numbers",
			input: "1:int x;\n2:    x++;",
			want:  "int x;\n    x++;",
		},
		{
			name:  "removes tab separated numbers",
			input: "1\tint x;\n  2\t\tx++;",
			want:  "int x;\n  x++;",
		},
		{
			name:  "preserves blank lines verbatim",
			input: "1 a = 1\n\n   \n2 b = 2",
			want:  "a = 1\n\n   \nb = 2",
		},
		{
			name:  "drops numbered lines without code",
			input: "1|\n2.  \n3:\na = 1",
			want:  "a = 1",
		},
		{
			name:  "keeps lines without numbers unchanged",
			input: "x = 1\n    y = 2\n\treturn x",
			want:  "x = 1\n    y = 2\n\treturn x",
		},
		{
			name:  "returns empty input unchanged",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, leetdoc.StripLineNumbers(tt.input))
		})
	}
}

func TestStripLineNumbers_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"1 class Solution:\n2     def f(self):\n3         return 1",
		"1.def f():\n2.    return 1\n\n3.print(f())",
		"1|int main() {\n2|    return 0;\n3|}",
		"x = 1\ny = 2",
	}

	for _, input := range inputs {
		once := leetdoc.StripLineNumbers(input)
		assert.Equal(t, once, leetdoc.StripLineNumbers(once), "input %q", input)
	}
}

func TestStripLineNumbers_NeverDropsCode(t *testing.T) {
	t.Parallel()

	input := "1 a\n2 b\n3 c\n4\n5 d"
	got := leetdoc.StripLineNumbers(input)

	assert.Equal(t, "a\nb\nc\nd", got)
}
