package analysis

import (
	"github.com/sourcegraph/scip/bindings/go/scip"
)

// Collect builds the initial candidate set from every method and function
// declaration in the index, and records the display names of declared traits.
// Symbols with a kind outside {Method, Function, Trait} are skipped.
func Collect(idx *scip.Index) (CandidateSet, TraitSet) {
	candidates := make(CandidateSet)
	traits := make(TraitSet)

	for _, doc := range idx.GetDocuments() {
		for _, info := range doc.GetSymbols() {
			switch info.GetKind() {
			case scip.SymbolInformation_Trait:
				traits[info.GetDisplayName()] = true
			case scip.SymbolInformation_Method, scip.SymbolInformation_Function:
				// Symbol ids are expected to be unique; last write wins.
				candidates[info.GetSymbol()] = &Candidate{
					Symbol:      info.GetSymbol(),
					DisplayName: info.GetDisplayName(),
					FileHint:    info.GetSignatureDocumentation().GetRelativePath(),
				}
			}
		}
	}

	return candidates, traits
}
