package fs_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarkdownRenderer_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ leetdoc.Renderer = &fs.MarkdownRenderer{}
}

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Parallel()

	exported := time.Date(2025, 1, 8, 12, 30, 0, 0, time.UTC)
	set := &leetdoc.ProblemSet{Title: "Week 3: Arrays", SubmittedBy: "Jane Doe"}
	problems := []*leetdoc.Problem{
		{
			Name:           "Two Sum",
			Language:       "Python3",
			SubmissionLink: "https://leetcode.com/submissions/detail/1/",
			Code:           "class Solution:\n    pass\n",
		},
		{
			Name:           "Valid Anagram",
			Language:       "C++",
			SubmissionLink: "https://leetcode.com/submissions/detail/2/",
			Code:           "class Solution {};",
		},
	}

	r := &fs.MarkdownRenderer{Now: func() time.Time { return exported }}

	var buf bytes.Buffer
	err := r.Render(&buf, set, problems)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "---\n"))
	parts := strings.SplitN(strings.TrimPrefix(out, "---\n"), "---\n", 2)
	require.Len(t, parts, 2)

	t.Run("frontmatter survives special characters", func(t *testing.T) {
		t.Parallel()

		var front fs.Frontmatter
		require.NoError(t, yaml.Unmarshal([]byte(parts[0]), &front))
		assert.Equal(t, "Week 3: Arrays", front.Title)
		assert.Equal(t, "Jane Doe", front.SubmittedBy)
		assert.Equal(t, 2, front.Problems)
		assert.True(t, exported.Equal(front.Exported))
	})

	t.Run("body follows document layout", func(t *testing.T) {
		t.Parallel()

		want := "\n# Week 3: Arrays\n\n" +
			"Submitted by: Jane Doe\n" +
			"\n## Two Sum\n\n" +
			"Submission Link-\n" +
			"https://leetcode.com/submissions/detail/1/\n\n" +
			"Code-\n\n" +
			"```python\nclass Solution:\n    pass\n```\n" +
			"\n## Valid Anagram\n\n" +
			"Submission Link-\n" +
			"https://leetcode.com/submissions/detail/2/\n\n" +
			"Code-\n\n" +
			"```cpp\nclass Solution {};\n```\n"
		assert.Equal(t, want, parts[1])
	})
}

func TestMarkdownRenderer_Ext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "md", fs.NewMarkdownRenderer().Ext())
}
