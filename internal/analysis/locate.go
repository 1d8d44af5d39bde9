package analysis

import (
	"sort"

	"github.com/sourcegraph/scip/bindings/go/scip"
)

// Locate sweeps the index a second time to find the definition site of every
// surviving candidate, then groups findings by document and orders them for
// display: groups by path ascending, findings by start line ascending. Each
// candidate is located at most once and leaves the set when found.
func Locate(idx *scip.Index, candidates CandidateSet) []FindingGroup {
	byPath := make(map[string][]Finding)

	for _, doc := range idx.GetDocuments() {
		for _, occ := range doc.GetOccurrences() {
			c, ok := candidates[occ.GetSymbol()]
			if !ok || occ.GetSymbolRoles()&int32(scip.SymbolRole_Definition) == 0 {
				continue
			}

			r := occ.GetRange()
			var line int32
			if len(r) > 0 {
				line = r[0]
			}

			path := doc.GetRelativePath()
			byPath[path] = append(byPath[path], Finding{
				Path:        path,
				Line:        line,
				Symbol:      c.Symbol,
				DisplayName: c.DisplayName,
			})
			delete(candidates, occ.GetSymbol())
		}
	}

	groups := make([]FindingGroup, 0, len(byPath))
	for path, findings := range byPath {
		sort.SliceStable(findings, func(i, j int) bool {
			return findings[i].Line < findings[j].Line
		})
		groups = append(groups, FindingGroup{Path: path, Findings: findings})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Path < groups[j].Path
	})

	return groups
}
