package report

import (
	"bytes"
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	t.Run("emits one block per file", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf)

		err := reporter.Report([]core.FileResult{
			{Path: "a.txt", Lines: []string{"1:first", "3:third"}},
			{Path: "b.txt", Lines: []string{"hit"}},
		})
		require.NoError(t, err)

		assert.Equal(t, "\nIn file: a.txt\n1:first\n3:third\n\nIn file: b.txt\nhit\n", buf.String())
	})

	t.Run("empty result set writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf)

		require.NoError(t, reporter.Report(nil))
		assert.Zero(t, buf.Len())
	})

	t.Run("colored header carries ANSI codes", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, WithColor(true))

		err := reporter.Report([]core.FileResult{{Path: "a.txt", Lines: []string{"hit"}}})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), "In file: a.txt")
	})

	t.Run("plain output has no ANSI codes", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf)

		err := reporter.Report([]core.FileResult{{Path: "a.txt", Lines: []string{"hit"}}})
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "\x1b[")
	})
}

func TestReportLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.ReportLines([]string{"2:safe, fast, productive."}))
	assert.Equal(t, "2:safe, fast, productive.\n", buf.String())
}
