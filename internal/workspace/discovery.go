package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks the workspace tree and yields the files the textual
// corroboration pass should scan: regular files with one of the configured
// extensions, outside cache directories and ignore patterns.
type Discovery struct {
	rootDir        string
	extensions     map[string]bool
	cacheMarker    string
	ignorePatterns []compiledPattern
}

// NewDiscovery creates a discovery instance for the given root.
// Extensions are given without a leading dot. Any directory containing the
// cache marker file is pruned entirely.
func NewDiscovery(rootDir string, extensions []string, cacheMarker string, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{
		rootDir:     rootDir,
		extensions:  make(map[string]bool, len(extensions)),
		cacheMarker: cacheMarker,
	}

	for _, ext := range extensions {
		d.extensions[strings.TrimPrefix(ext, ".")] = true
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Files walks the directory tree and returns matching file paths, relative to
// the workspace root and slash-normalized.
func (d *Discovery) Files() ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(d.rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == d.rootDir {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			// The root itself is never pruned, subdirectories are.
			if d.cacheMarker != "" {
				if _, err := os.Stat(filepath.Join(path, d.cacheMarker)); err == nil {
					return filepath.SkipDir
				}
			}
			if d.ShouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(relPath), ".")
		if !d.extensions[ext] {
			return nil
		}

		if d.ShouldIgnore(relPath) {
			return nil
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk workspace %s: %w", d.rootDir, err)
	}

	return files, nil
}

// Abs joins a discovered relative path back onto the workspace root.
func (d *Discovery) Abs(relPath string) string {
	return filepath.Join(d.rootDir, filepath.FromSlash(relPath))
}

// ShouldIgnore checks if a slash-normalized relative path matches any ignore
// pattern. The tool's own dot-directory is always ignored.
func (d *Discovery) ShouldIgnore(relPath string) bool {
	if strings.HasPrefix(relPath, ".unusedpub/") || relPath == ".unusedpub" {
		return true
	}

	if d.matchesAnyPattern(relPath, d.ignorePatterns) {
		return true
	}

	// Also check if this is a directory that would match with /** suffix,
	// so "target" is pruned by the pattern "target/**".
	pathWithSuffix := relPath + "/**"
	return d.matchesAnyPattern(pathWithSuffix, d.ignorePatterns)
}

// InCacheDir reports whether a slash-normalized relative path lies inside a
// directory pruned by the cache marker, checking the path's ancestors for the
// marker file. The workspace root itself is never treated as pruned.
func (d *Discovery) InCacheDir(relPath string) bool {
	if d.cacheMarker == "" || relPath == "" || relPath == "." {
		return false
	}

	dir := d.rootDir
	for _, part := range strings.Split(relPath, "/") {
		dir = filepath.Join(dir, part)
		if _, err := os.Stat(filepath.Join(dir, d.cacheMarker)); err == nil {
			return true
		}
	}
	return false
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func (d *Discovery) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}
	return false
}
