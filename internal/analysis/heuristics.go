package analysis

import "strings"

// FilterHeuristics removes candidates matching known never-called patterns:
// entry points, test code, and methods that may be dispatched through a trait.
// All checks are deliberately substring-based, never token-bounded; they trade
// precision for not needing attribute-level metadata.
func FilterHeuristics(candidates CandidateSet, traits TraitSet) {
	for symbol, c := range candidates {
		if !keepCandidate(c, traits) {
			delete(candidates, symbol)
		}
	}
}

// keepCandidate reports whether a candidate survives the heuristic filter.
func keepCandidate(c *Candidate, traits TraitSet) bool {
	// Test-annotated functions carry "test" in their symbol id or declaring
	// file path. Entry points are invoked by the runtime, not by visible
	// references.
	if strings.Contains(c.Symbol, "test") {
		return false
	}
	if c.DisplayName == "main" {
		return false
	}
	if strings.Contains(c.FileHint, "test") {
		return false
	}

	// Methods whose symbol id mentions a declared trait may be called only
	// through dynamic dispatch, which the reference pass cannot see.
	for trait := range traits {
		if strings.Contains(c.Symbol, trait) {
			return false
		}
	}

	return true
}
