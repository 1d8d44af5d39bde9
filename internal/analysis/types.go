package analysis

import "fmt"

// Candidate is a declaration currently believed possibly unused. The set of
// candidates only shrinks as the passes run.
type Candidate struct {
	Symbol      string // globally unique symbol id
	DisplayName string // human-readable name, not necessarily unique
	FileHint    string // relative path of the declaring file, when the index provides one
	Uses        int    // textual occurrence counter, maintained by the corroboration pass
}

// CandidateSet maps symbol ids to candidates.
type CandidateSet map[string]*Candidate

// TraitSet records the display names of declared traits/interfaces.
type TraitSet map[string]bool

// Finding is a located definition of a surviving candidate.
type Finding struct {
	Path        string `json:"path"` // document path relative to the workspace root
	Line        int32  `json:"line"` // 0-based start line of the definition
	Symbol      string `json:"symbol"`
	DisplayName string `json:"name"`
}

// FindingGroup holds all findings within one document.
type FindingGroup struct {
	Path     string    `json:"path"`
	Findings []Finding `json:"findings"`
}

// Result is the outcome of a full pipeline run. Groups are sorted by path
// ascending and findings within a group by line ascending.
type Result struct {
	Groups []FindingGroup `json:"groups"`
	Total  int            `json:"total"`
}

// FindingsError reports a failed gate: the pipeline completed but found
// possibly unused functions. It is distinct from operational errors so the
// CLI can exit with a dedicated status.
type FindingsError struct {
	Count int
}

func (e *FindingsError) Error() string {
	return fmt.Sprintf("found %d possibly unused functions", e.Count)
}
