package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ResolvePath turns a user supplied path into the one to open. A leading "~"
// expands to the home directory. A bare filename (no "/") is taken relative to
// the working directory. Anything else is returned unchanged.
func ResolvePath(raw string) (string, error) {
	switch {
	case strings.HasPrefix(raw, "~"):
		expanded, err := homedir.Expand(raw)
		if err != nil {
			return "", fmt.Errorf("failed to expand home directory in %q: %w", raw, err)
		}
		return expanded, nil
	case !strings.Contains(raw, "/"):
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return filepath.Join(cwd, raw), nil
	default:
		return raw, nil
	}
}

// Exists reports whether something is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FreePath returns path if nothing exists there, otherwise the first
// "name-N.ext" sibling that is free, counting from 1.
func FreePath(path string) string {
	if !Exists(path) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", base, i, ext)
		if !Exists(candidate) {
			return candidate
		}
	}
}
