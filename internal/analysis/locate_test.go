package analysis

import (
	"testing"

	"github.com/sourcegraph/scip/bindings/go/scip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Locate:
// - Findings are grouped by document path
// - Groups are sorted by path ascending, findings by line ascending
// - Non-definition occurrences never produce findings
// - Each candidate is located at most once
// - Candidates without a definition occurrence produce no finding

func TestLocate_GroupingAndOrdering(t *testing.T) {
	t.Parallel()

	idx := testIndex(
		testDoc("src/zeta.rs", nil, []*scip.Occurrence{
			defOcc("sym/c().", 30),
			defOcc("sym/b().", 5),
		}),
		testDoc("src/alpha.rs", nil, []*scip.Occurrence{
			defOcc("sym/a().", 11),
		}),
	)

	candidates := CandidateSet{
		"sym/a().": {Symbol: "sym/a().", DisplayName: "a"},
		"sym/b().": {Symbol: "sym/b().", DisplayName: "b"},
		"sym/c().": {Symbol: "sym/c().", DisplayName: "c"},
	}

	groups := Locate(idx, candidates)

	require.Len(t, groups, 2)
	assert.Equal(t, "src/alpha.rs", groups[0].Path, "groups sorted by path")
	assert.Equal(t, "src/zeta.rs", groups[1].Path)

	require.Len(t, groups[1].Findings, 2)
	assert.Equal(t, int32(5), groups[1].Findings[0].Line, "findings sorted by line")
	assert.Equal(t, int32(30), groups[1].Findings[1].Line)
	assert.Equal(t, "b", groups[1].Findings[0].DisplayName)

	assert.Empty(t, candidates, "located candidates leave the set")
}

func TestLocate_IgnoresNonDefinitionOccurrences(t *testing.T) {
	t.Parallel()

	idx := testIndex(
		testDoc("src/lib.rs", nil, []*scip.Occurrence{
			refOcc("sym/x().", 2),
		}),
	)

	candidates := CandidateSet{
		"sym/x().": {Symbol: "sym/x().", DisplayName: "x"},
	}

	groups := Locate(idx, candidates)

	assert.Empty(t, groups)
	assert.Len(t, candidates, 1, "unlocated candidate stays in the set")
}

func TestLocate_EachCandidateLocatedOnce(t *testing.T) {
	t.Parallel()

	idx := testIndex(
		testDoc("src/a.rs", nil, []*scip.Occurrence{
			defOcc("sym/dup().", 1),
		}),
		testDoc("src/b.rs", nil, []*scip.Occurrence{
			defOcc("sym/dup().", 7),
		}),
	)

	candidates := CandidateSet{
		"sym/dup().": {Symbol: "sym/dup().", DisplayName: "dup"},
	}

	groups := Locate(idx, candidates)

	total := 0
	for _, g := range groups {
		total += len(g.Findings)
	}
	assert.Equal(t, 1, total, "first definition wins, later ones are not findings")
}
