package leetdoc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/leetdoc"
	"github.com/stretchr/testify/assert"
)

func TestMapLanguage(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"cpp":       "C++",
		"python3":   "Python3",
		"csharp":    "C#",
		"mysql":     "MySQL",
		"mssql":     "MS SQL Server",
		"oraclesql": "Oracle SQL",
		"zzz":       "zzz",
		"":          leetdoc.UnknownLanguage,
	}

	for tag, want := range tests {
		assert.Equal(t, want, leetdoc.MapLanguage(tag), "tag %q", tag)
	}
}

func TestSniffLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "C++ include with std namespace",
			code: "#include <iostream>\nusing namespace std;\nint main() { return 0; }",
			want: "C++",
		},
		{
			name: "C++ wins over class syntax",
			code: "#include <vector>\nclass Solution {\npublic:\n    int f() { return 0; }\n};",
			want: "C++",
		},
		{
			name: "Python def",
			code: "def two_sum(nums):\n    return nums",
			want: "Python",
		},
		{
			name: "Python class after an import is not anchored",
			code: "from typing import List\nclass Solution:\n    pass",
			want: leetdoc.UnknownLanguage,
		},
		{
			name: "Java public class",
			code: "public class Main {\n}",
			want: "Java",
		},
		{
			name: "JavaScript arrow function",
			code: "const twoSum = (nums) => nums;",
			want: "JavaScript",
		},
		{
			name: "Rust fn",
			code: "fn main() {\n}",
			want: "Rust",
		},
		{
			name: "Go package main",
			code: "package main\n\nfunc main() {}",
			want: "Go",
		},
		{
			name: "C# using System",
			code: "using System;\nnamespace App {}",
			want: "C#",
		},
		{
			name: "C# using System before a public class",
			code: "using System;\n\npublic class Solution {\n    public int Add(int a, int b) { return a + b; }\n}",
			want: "C#",
		},
		{
			name: "Go package main with an import block",
			code: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(1)\n}",
			want: "Go",
		},
		{
			name: "unknown content",
			code: "SELECT name FROM users",
			want: leetdoc.UnknownLanguage,
		},
		{
			name: "empty content",
			code: "",
			want: leetdoc.UnknownLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, leetdoc.SniffLanguage(tt.code))
		})
	}
}

func TestIsPlausibleLanguage(t *testing.T) {
	t.Parallel()

	assert.True(t, leetdoc.IsPlausibleLanguage("Python3"))
	assert.True(t, leetdoc.IsPlausibleLanguage("JavaScript"))
	assert.False(t, leetdoc.IsPlausibleLanguage(""))
	assert.False(t, leetdoc.IsPlausibleLanguage("123"))
	assert.False(t, leetdoc.IsPlausibleLanguage("Py\nthon"))
	assert.False(t, leetdoc.IsPlausibleLanguage(strings.Repeat("a", 31)))
	// Symbol-heavy labels fail the majority-letters check.
	assert.False(t, leetdoc.IsPlausibleLanguage("C++"))
}
