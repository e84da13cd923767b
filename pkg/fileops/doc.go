// Package fileops provides the file and path helpers shared by the mdpo
// Markdown/gettext tooling.
//
// The helpers are small and stateless. Each one either inspects strings or
// performs blocking I/O against the local filesystem and releases every file
// handle before returning.
//
// # Inputs That May Be Files, Globs or Content
//
// Command inputs in mdpo can be a file path, a glob or a literal piece of
// Markdown. Two helpers disambiguate them:
//
//	text, err := fileops.ToFileContentIfIsFile(value, "utf-8")
//	if err != nil {
//	    return fmt.Errorf("read input: %w", err)
//	}
//
//	if res := fileops.ToGlobOrContent(value); res.IsGlob() {
//	    for _, path := range res.Paths() {
//	        // process each matched file
//	    }
//	} else {
//	    // treat res.Content() as Markdown
//	}
//
// A string that matches nothing on disk, or that is not a valid pattern, is
// always content. A literal that happens to name an existing file is
// classified as a glob.
//
// # Filtering Path Lists
//
// FilterPaths drops candidates whose file name, parent directory name, full
// path or parent path equals one of the ignore entries, then sorts the rest:
//
//	fileops.FilterPaths([]string{"a/b/c.md", "a/b/d.md", "x/y.md"}, "c.md")
//	// []string{"a/b/d.md", "x/y.md"}
//
// # Change Detection
//
// SaveFileCheckingFileChanged always rewrites the target and compares MD5
// digests computed by FileHash before and after the write:
//
//	changed, err := fileops.SaveFileCheckingFileChanged("out.po", content, "utf-8")
//
// MD5 is only used as an equality check here.
package fileops
