package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ScanProgress renders a progress bar while the textual corroboration pass
// reads the workspace. The bar goes to stderr so report output stays clean.
type ScanProgress struct {
	bar *progressbar.ProgressBar
}

// NewScanProgress creates a progress reporter for totalFiles files.
// When quiet is set, all methods are no-ops.
func NewScanProgress(quiet bool, totalFiles int) *ScanProgress {
	if quiet || totalFiles == 0 {
		return &ScanProgress{}
	}

	bar := progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Scanning sources"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	return &ScanProgress{bar: bar}
}

// FileScanned advances the bar by one file. Safe to call concurrently.
func (p *ScanProgress) FileScanned(string) {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

// Finish completes the bar.
func (p *ScanProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
