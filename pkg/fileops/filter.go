package fileops

import (
	"os"
	"slices"
	"strings"
)

// FilterPaths removes from filepaths every entry matched by ignorePaths and
// returns the remaining paths sorted alphabetically.
//
// An ignore entry is a literal string, never a pattern. A path is dropped when
// any of the following equals an ignore entry:
//   - its file name ("c.md" for "a/b/c.md")
//   - the name of its direct parent directory ("b")
//   - the path itself ("a/b/c.md")
//   - its parent directory path, relative or absolute ("a/b")
//
// Paths are split on the platform separator. A file without parent segments
// has an empty parent name and parent path, so an empty ignore entry drops it.
//
// Parameters:
//   - filepaths: Candidate paths; the slice is not modified
//   - ignorePaths: Entries to exclude (none means keep everything)
//
// Returns:
//   - []string: A new, sorted slice; duplicates in the input are kept
//
// Usage example:
//
//	kept := fileops.FilterPaths(files, "node_modules", "CHANGELOG.md")
func FilterPaths(filepaths []string, ignorePaths ...string) []string {
	response := make([]string, 0, len(filepaths))
	for _, filepath := range filepaths {
		if isIgnoredPath(filepath, ignorePaths) {
			continue
		}
		response = append(response, filepath)
	}
	slices.Sort(response)
	return response
}

func isIgnoredPath(filepath string, ignorePaths []string) bool {
	if len(ignorePaths) == 0 {
		return false
	}

	// ignore by filename
	if slices.Contains(ignorePaths, baseName(filepath)) {
		return true
	}
	// ignore by dirname
	if slices.Contains(ignorePaths, baseName(dirName(filepath))) {
		return true
	}
	// ignore by filepath
	if slices.Contains(ignorePaths, filepath) {
		return true
	}
	// ignore by dirpath
	return slices.Contains(ignorePaths, parentPath(filepath))
}

// baseName returns everything after the last separator. Unlike filepath.Base
// it keeps trailing separators significant, so "a/b/" has an empty name.
func baseName(path string) string {
	return path[lastSeparator(path)+1:]
}

// dirName returns everything before the last separator with trailing
// separators removed, or "" when the path has no separator.
func dirName(path string) string {
	i := lastSeparator(path)
	if i < 0 {
		return ""
	}
	head := path[:i+1]
	if trimmed := strings.TrimRightFunc(head, isSeparator); trimmed != "" {
		return trimmed
	}
	return head
}

// parentPath joins every segment but the last with the platform separator.
func parentPath(path string) string {
	sep := string(os.PathSeparator)
	segments := strings.Split(path, sep)
	return strings.Join(segments[:len(segments)-1], sep)
}

func lastSeparator(path string) int {
	return strings.LastIndexFunc(path, isSeparator)
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}
