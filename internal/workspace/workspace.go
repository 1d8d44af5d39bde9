package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve normalizes a workspace argument to an absolute path, defaulting to
// the current working directory when the argument is empty.
func Resolve(arg string) (string, error) {
	if arg == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace path %s: %w", arg, err)
	}
	return abs, nil
}

// Validate checks that root is a directory containing the project marker file.
// Analysis must not start against an arbitrary directory.
func Validate(root, marker string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("workspace %s is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace %s is not a directory", root)
	}

	if _, err := os.Stat(filepath.Join(root, marker)); err != nil {
		return fmt.Errorf("%s does not contain a %s file", root, marker)
	}

	return nil
}
