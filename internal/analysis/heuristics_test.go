package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for FilterHeuristics:
// - Symbol ids containing "test" are removed (Scenario: test code)
// - Display name exactly "main" is removed (Scenario C)
// - File hints containing "test" are removed
// - Symbol ids containing a recorded trait name are removed (Scenario D)
// - Matching is substring-based, not token-bounded, in both directions
// - A display name merely containing "main" survives

func TestFilterHeuristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate *Candidate
		traits    TraitSet
		keep      bool
	}{
		{
			name:      "plain function survives",
			candidate: &Candidate{Symbol: "crate 0.1.0 lib/compute().", DisplayName: "compute"},
			keep:      true,
		},
		{
			name:      "symbol id containing test",
			candidate: &Candidate{Symbol: "crate 0.1.0 tests/helpers/setup().", DisplayName: "setup"},
			keep:      false,
		},
		{
			name:      "entry point main",
			candidate: &Candidate{Symbol: "crate 0.1.0 main/main().", DisplayName: "main"},
			keep:      false,
		},
		{
			name:      "name containing main is not an entry point",
			candidate: &Candidate{Symbol: "crate 0.1.0 lib/domain().", DisplayName: "domain"},
			keep:      true,
		},
		{
			name:      "file hint in test file",
			candidate: &Candidate{Symbol: "crate 0.1.0 lib/fixture().", DisplayName: "fixture", FileHint: "src/integration_tests.rs"},
			keep:      false,
		},
		{
			name:      "trait name inside symbol id",
			candidate: &Candidate{Symbol: "crate 0.1.0 lib/Handler#baz().", DisplayName: "baz"},
			traits:    TraitSet{"Handler": true},
			keep:      false,
		},
		{
			name:      "unrelated trait does not match",
			candidate: &Candidate{Symbol: "crate 0.1.0 lib/Widget#draw().", DisplayName: "draw"},
			traits:    TraitSet{"Handler": true},
			keep:      true,
		},
		{
			// Known over-exclusion: the check is a raw substring, so a
			// symbol like "latest" trips the "test" rule. Preserved for
			// compatibility.
			name:      "substring over-exclusion",
			candidate: &Candidate{Symbol: "crate 0.1.0 lib/latest().", DisplayName: "latest"},
			keep:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			traits := tt.traits
			if traits == nil {
				traits = TraitSet{}
			}

			candidates := CandidateSet{tt.candidate.Symbol: tt.candidate}
			FilterHeuristics(candidates, traits)

			_, kept := candidates[tt.candidate.Symbol]
			assert.Equal(t, tt.keep, kept)
		})
	}
}

func TestFilterHeuristics_AllRulesApplyTogether(t *testing.T) {
	t.Parallel()

	candidates := make(CandidateSet)
	for i := 0; i < 5; i++ {
		symbol := fmt.Sprintf("crate 0.1.0 lib/fn%d().", i)
		candidates[symbol] = &Candidate{Symbol: symbol, DisplayName: fmt.Sprintf("fn%d", i)}
	}
	candidates["crate 0.1.0 lib/Handler#on_event()."] = &Candidate{
		Symbol: "crate 0.1.0 lib/Handler#on_event().", DisplayName: "on_event",
	}

	FilterHeuristics(candidates, TraitSet{"Handler": true})

	assert.Len(t, candidates, 5, "only the trait method is removed")
}
