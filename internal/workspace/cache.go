package workspace

import (
	"fmt"
	"os"
	"strings"

	"github.com/maypok86/otter"
)

// ReadLines reads a file and splits it into lines. Both \n and \r\n endings
// are handled; a trailing newline does not produce an empty final line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits file contents into lines without line terminators.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ContentCache caches file contents keyed by path, size and mtime so that
// watch-mode reruns skip re-reading unchanged files. A nil *ContentCache is
// valid and reads straight from disk.
type ContentCache struct {
	cache otter.Cache[string, []string]
}

// NewContentCache creates a content cache holding up to capacity files.
func NewContentCache(capacity int) (*ContentCache, error) {
	cache, err := otter.MustBuilder[string, []string](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build content cache: %w", err)
	}
	return &ContentCache{cache: cache}, nil
}

// Lines returns the file's lines, served from cache when size and mtime are
// unchanged since the last read.
func (c *ContentCache) Lines(path string) ([]string, error) {
	if c == nil {
		return ReadLines(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	if lines, ok := c.cache.Get(key); ok {
		return lines, nil
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, lines)
	return lines, nil
}

// Close releases cache resources.
func (c *ContentCache) Close() {
	if c != nil {
		c.cache.Close()
	}
}
