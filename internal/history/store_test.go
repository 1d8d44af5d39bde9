package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unusedpub/unusedpub/internal/analysis"
)

// Test Plan for Store:
// - RecordRun persists a run and its findings atomically
// - ListRuns returns newest first and honors the limit
// - LatestRun returns nil for an empty workspace
// - Prune keeps only the newest N runs and cascades finding deletion
// - NewSince diffs by symbol id against a previous run's findings

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), ".unusedpub", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Groups: []analysis.FindingGroup{
			{
				Path: "src/lib.rs",
				Findings: []analysis.Finding{
					{Path: "src/lib.rs", Line: 9, Symbol: "sym/foo().", DisplayName: "foo"},
					{Path: "src/lib.rs", Line: 20, Symbol: "sym/bar().", DisplayName: "bar"},
				},
			},
		},
		Total: 2,
	}
}

func TestStore_RecordAndFetch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	id, err := store.RecordRun("/ws", sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := store.LatestRun("/ws")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "/ws", run.Workspace)
	assert.Equal(t, 2, run.Total)

	findings, err := store.FindingsForRun(id)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "sym/foo().", findings[0].Symbol)
	assert.Equal(t, int32(9), findings[0].Line)
}

func TestStore_LatestRunEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	run, err := store.LatestRun("/never-recorded")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestStore_ListRunsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := store.RecordRun("/ws", &analysis.Result{Total: i})
		require.NoError(t, err)
	}

	runs, err := store.ListRuns("/ws", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.GreaterOrEqual(t, runs[0].Total, runs[1].Total, "newest first")

	other, err := store.ListRuns("/other", 10)
	require.NoError(t, err)
	assert.Empty(t, other, "workspaces are isolated")
}

func TestStore_Prune(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	var lastID string
	for i := 0; i < 5; i++ {
		id, err := store.RecordRun("/ws", sampleResult())
		require.NoError(t, err)
		lastID = id
	}

	require.NoError(t, store.Prune("/ws", 2))

	runs, err := store.ListRuns("/ws", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	findings, err := store.FindingsForRun(lastID)
	require.NoError(t, err)
	assert.Len(t, findings, 2, "kept run retains its findings")

	// keep <= 0 disables pruning.
	require.NoError(t, store.Prune("/ws", 0))
	runs, err = store.ListRuns("/ws", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestNewSince(t *testing.T) {
	t.Parallel()

	previous := []analysis.Finding{
		{Symbol: "sym/foo().", DisplayName: "foo"},
	}

	fresh := NewSince(sampleResult(), previous)

	require.Len(t, fresh, 1)
	assert.Equal(t, "sym/bar().", fresh[0].Symbol)

	assert.Empty(t, NewSince(&analysis.Result{}, previous), "no findings means nothing new")
	assert.Len(t, NewSince(sampleResult(), nil), 2, "empty baseline makes everything new")
}
