package leetdoc_test

import (
	"testing"

	"github.com/fwojciec/leetdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSubmissionPath(t *testing.T) {
	t.Parallel()

	assert.True(t, leetdoc.IsSubmissionPath("/problems/two-sum/submissions/1886581454/"))
	assert.True(t, leetdoc.IsSubmissionPath("/submissions/detail/1886581454/"))
	assert.False(t, leetdoc.IsSubmissionPath("/problems/two-sum/"))
	assert.False(t, leetdoc.IsSubmissionPath("/problems/two-sum/submissions/"))
	assert.False(t, leetdoc.IsSubmissionPath(""))
}

func TestSubmissionID(t *testing.T) {
	t.Parallel()

	t.Run("parses problem submission path", func(t *testing.T) {
		t.Parallel()

		id, err := leetdoc.SubmissionID("/problems/minimum-bit-flips/submissions/1886581454/")

		require.NoError(t, err)
		assert.Equal(t, "1886581454", id)
	})

	t.Run("parses submission detail path", func(t *testing.T) {
		t.Parallel()

		id, err := leetdoc.SubmissionID("/submissions/detail/1886581454/")

		require.NoError(t, err)
		assert.Equal(t, "1886581454", id)
	})

	t.Run("returns ENOID without an identifier", func(t *testing.T) {
		t.Parallel()

		_, err := leetdoc.SubmissionID("/problems/two-sum/")

		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOID, leetdoc.ErrorCode(err))
	})

	t.Run("returns ENOID when identifier overflows", func(t *testing.T) {
		t.Parallel()

		_, err := leetdoc.SubmissionID("/submissions/detail/99999999999999999999999/")

		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOID, leetdoc.ErrorCode(err))
	})
}

func TestSubmissionLink(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://leetcode.com/submissions/detail/123/", leetdoc.SubmissionLink("123"))
}

func TestLocationPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/problems/two-sum/submissions/1/",
		leetdoc.LocationPath("https://leetcode.com/problems/two-sum/submissions/1/?envType=daily"))
	assert.Equal(t, "/submissions/detail/2/", leetdoc.LocationPath("/submissions/detail/2/"))
}
