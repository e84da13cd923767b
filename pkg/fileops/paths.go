package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// markdownExtensions contains supported markdown file extensions
var markdownExtensions = []string{
	".md", ".mdown", ".mkdn", ".mkd", ".markdown",
}

// ExpandPath expands a leading "~/" to the user's home directory.
// Other paths, and paths that cannot be expanded, are returned as is.
//
// Usage example:
//
//	expanded := fileops.ExpandPath("~/docs/README.md")
//	// Returns something like "/home/user/docs/README.md"
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// EnsureDirectoryExists creates a directory and all necessary parent directories.
// This is equivalent to `mkdir -p` and is safe to call multiple times.
//
// The function sets directory permissions to 0755 (readable and executable by all,
// writable by owner only).
func EnsureDirectoryExists(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// IsMarkdownFile checks if a filename has a markdown extension.
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return slices.Contains(markdownExtensions, ext)
}
