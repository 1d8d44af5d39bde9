package analysis

import (
	"github.com/sourcegraph/scip/bindings/go/scip"
)

// EliminateReferenced removes every candidate that has a non-definition
// occurrence anywhere in the index. Any occurrence lacking the Definition role
// is evidence of a use: a call, a reference, an import. What survives has zero
// recorded uses in the indexed universe.
func EliminateReferenced(idx *scip.Index, candidates CandidateSet) {
	for _, doc := range idx.GetDocuments() {
		for _, occ := range doc.GetOccurrences() {
			if occ.GetSymbolRoles()&int32(scip.SymbolRole_Definition) == 0 {
				delete(candidates, occ.GetSymbol())
			}
		}
	}
}
