package analysis

import (
	"github.com/sourcegraph/scip/bindings/go/scip"
)

// Shared fixture builders for pipeline tests. Symbol ids follow the
// rust-analyzer SCIP shape loosely; only substring content matters here.

func testDoc(path string, symbols []*scip.SymbolInformation, occurrences []*scip.Occurrence) *scip.Document {
	return &scip.Document{
		RelativePath: path,
		Symbols:      symbols,
		Occurrences:  occurrences,
	}
}

func testSymbol(symbol, displayName string, kind scip.SymbolInformation_Kind) *scip.SymbolInformation {
	return &scip.SymbolInformation{
		Symbol:      symbol,
		DisplayName: displayName,
		Kind:        kind,
	}
}

func testSymbolInFile(symbol, displayName string, kind scip.SymbolInformation_Kind, fileHint string) *scip.SymbolInformation {
	info := testSymbol(symbol, displayName, kind)
	info.SignatureDocumentation = &scip.Document{RelativePath: fileHint}
	return info
}

func defOcc(symbol string, line int32) *scip.Occurrence {
	return &scip.Occurrence{
		Symbol:      symbol,
		SymbolRoles: int32(scip.SymbolRole_Definition),
		Range:       []int32{line, 0, line, 10},
	}
}

func refOcc(symbol string, line int32) *scip.Occurrence {
	return &scip.Occurrence{
		Symbol:      symbol,
		SymbolRoles: 0,
		Range:       []int32{line, 0, line, 10},
	}
}

func testIndex(docs ...*scip.Document) *scip.Index {
	return &scip.Index{Documents: docs}
}

// linesReader serves file contents from a map keyed by relative path.
func linesReader(files map[string][]string) func(string) ([]string, error) {
	return func(path string) ([]string, error) {
		return files[path], nil
	}
}

func candidateSymbols(candidates CandidateSet) []string {
	symbols := make([]string, 0, len(candidates))
	for symbol := range candidates {
		symbols = append(symbols, symbol)
	}
	return symbols
}
