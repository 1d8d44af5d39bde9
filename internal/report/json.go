package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/unusedpub/unusedpub/internal/analysis"
)

// WriteJSON emits the result as machine-readable JSON for CI integrations.
func WriteJSON(out io.Writer, result *analysis.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
