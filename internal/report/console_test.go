package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unusedpub/unusedpub/internal/analysis"
)

// Test Plan for ConsoleReporter:
// - Each group prints the path, then "line-number  source-line" per finding
// - Line numbers are 1-based and left-aligned in a 4-wide column
// - A group whose file is missing is skipped, not an error
// - A finding past the end of the file is skipped
// - JSON output round-trips the result structure

func TestConsoleReporter_Format(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "src", "lib.rs"),
		[]byte("line one\npub fn foo() {}\nline three\n"), 0644))

	result := &analysis.Result{
		Groups: []analysis.FindingGroup{
			{
				Path: "src/lib.rs",
				Findings: []analysis.Finding{
					{Path: "src/lib.rs", Line: 1, Symbol: "sym/foo().", DisplayName: "foo"},
				},
			},
		},
		Total: 1,
	}

	var buf bytes.Buffer
	reporter := &ConsoleReporter{Workspace: ws, Out: &buf}
	require.NoError(t, reporter.Report(result))

	assert.Equal(t, "src/lib.rs\n2    pub fn foo() {}\n\n", buf.String())
}

func TestConsoleReporter_MissingFileSkipped(t *testing.T) {
	t.Parallel()

	result := &analysis.Result{
		Groups: []analysis.FindingGroup{
			{
				Path: "src/gone.rs",
				Findings: []analysis.Finding{
					{Path: "src/gone.rs", Line: 0, Symbol: "sym/g().", DisplayName: "g"},
				},
			},
		},
		Total: 1,
	}

	var buf bytes.Buffer
	reporter := &ConsoleReporter{Workspace: t.TempDir(), Out: &buf}
	require.NoError(t, reporter.Report(result))

	assert.Empty(t, buf.String(), "missing file produces no report output")
}

func TestConsoleReporter_LineBeyondFileSkipped(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, "short.rs"), []byte("only line\n"), 0644))

	result := &analysis.Result{
		Groups: []analysis.FindingGroup{
			{
				Path: "short.rs",
				Findings: []analysis.Finding{
					{Path: "short.rs", Line: 0, Symbol: "sym/a().", DisplayName: "a"},
					{Path: "short.rs", Line: 99, Symbol: "sym/b().", DisplayName: "b"},
				},
			},
		},
		Total: 2,
	}

	var buf bytes.Buffer
	reporter := &ConsoleReporter{Workspace: ws, Out: &buf}
	require.NoError(t, reporter.Report(result))

	assert.Equal(t, "short.rs\n1    only line\n\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	result := &analysis.Result{
		Groups: []analysis.FindingGroup{
			{
				Path: "src/lib.rs",
				Findings: []analysis.Finding{
					{Path: "src/lib.rs", Line: 9, Symbol: "sym/foo().", DisplayName: "foo"},
				},
			},
		},
		Total: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	assert.Contains(t, buf.String(), `"total": 1`)
	assert.Contains(t, buf.String(), `"src/lib.rs"`)
	assert.Contains(t, buf.String(), `"name": "foo"`)
}
