package fileops

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobResult is the outcome of ToGlobOrContent: either the paths a glob
// matched or the original string, taken as literal content.
type GlobResult struct {
	paths   []string
	content string
	matched bool
}

// Matched builds a result for a glob that matched paths.
func Matched(paths []string) GlobResult {
	return GlobResult{paths: paths, matched: true}
}

// Literal builds a result for a string that is content, not a glob.
func Literal(content string) GlobResult {
	return GlobResult{content: content}
}

// IsGlob reports whether the value matched at least one path.
func (r GlobResult) IsGlob() bool {
	return r.matched
}

// Paths returns the matched paths, or nil for literal content.
func (r GlobResult) Paths() []string {
	return r.paths
}

// Content returns the literal content, or "" for a matched glob.
func (r GlobResult) Content() string {
	return r.content
}

// ToGlobOrContent decides whether value is a glob or literal content by
// expanding it against the current working directory.
//
// Returns:
//   - Matched(paths) when the expansion finds at least one path
//   - Literal(value) when nothing matches or value is not a valid pattern
//
// The check is a heuristic: literal content that names an existing file is
// classified as a glob. "**" matches any number of directories. Wildcards do
// not match names starting with a dot unless the pattern spells the dot out,
// so "*.md" skips ".draft.md" and "**" does not descend into ".git".
//
// Usage example:
//
//	res := fileops.ToGlobOrContent("docs/**/*.md")
//	if res.IsGlob() {
//	    files = res.Paths()
//	}
func ToGlobOrContent(value string) GlobResult {
	if value == "" || !doublestar.ValidatePathPattern(value) {
		return Literal(value)
	}

	matches, err := doublestar.FilepathGlob(value, doublestar.WithNoHidden())
	if err != nil || len(matches) == 0 {
		return Literal(value)
	}
	return Matched(matches)
}

// ToGlobOrContentIn behaves like ToGlobOrContent but expands relative patterns
// against dir instead of the working directory. Matched paths are relative to
// dir. Absolute patterns ignore dir.
func ToGlobOrContentIn(dir, value string) GlobResult {
	if value == "" || filepath.IsAbs(value) {
		return ToGlobOrContent(value)
	}

	pattern := path.Clean(filepath.ToSlash(value))
	if !doublestar.ValidatePattern(pattern) {
		return Literal(value)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithNoHidden())
	if err != nil || len(matches) == 0 {
		return Literal(value)
	}

	for i, m := range matches {
		matches[i] = filepath.FromSlash(m)
	}
	return Matched(matches)
}
