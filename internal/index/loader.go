package index

import (
	"fmt"
	"os"

	"github.com/sourcegraph/scip/bindings/go/scip"
	"google.golang.org/protobuf/proto"
)

// Load reads and decodes a SCIP index from disk.
func Load(path string) (*scip.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SCIP index %s: %w", path, err)
	}

	idx := &scip.Index{}
	if err := proto.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("failed to decode SCIP index %s: %w", path, err)
	}

	return idx, nil
}
