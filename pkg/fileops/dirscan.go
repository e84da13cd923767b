package fileops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CollectOptions configures CollectFiles.
type CollectOptions struct {
	// MaxDepth limits recursion. The root's own entries are at depth 1.
	// Zero or less means the default of 20.
	MaxDepth int

	// IncludeHidden determines whether names starting with '.' are visited.
	IncludeHidden bool

	// SkipDirs contains directory names that are never descended into.
	// These are exact matches against directory names, not paths.
	SkipDirs []string

	// FileFilter decides whether a file name is collected. Nil collects all files.
	FileFilter func(filename string) bool

	// SkipUnreadableDirs skips directories that cannot be read instead of
	// failing the whole walk.
	SkipUnreadableDirs bool
}

// DefaultSkipDirs returns commonly skipped directory names.
func DefaultSkipDirs() []string {
	return []string{
		"node_modules",
		".git",
		"vendor",
		"build",
		"dist",
		".cache",
		"__pycache__",
		".tox",
		".venv",
	}
}

const defaultMaxDepth = 20

// CollectFiles walks the tree under root and returns the paths of regular
// files, relative to root and in walk order. The walk runs inside an
// os.Root, so entries cannot escape root, and symbolic links are skipped.
//
// The result is suitable as the candidate list for FilterPaths.
//
// Usage example:
//
//	files, err := fileops.CollectFiles("docs", &fileops.CollectOptions{
//	    SkipDirs:   fileops.DefaultSkipDirs(),
//	    FileFilter: fileops.IsMarkdownFile,
//	})
func CollectFiles(root string, opts *CollectOptions) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("scan path cannot be empty")
	}
	if opts == nil {
		opts = &CollectOptions{SkipDirs: DefaultSkipDirs(), SkipUnreadableDirs: true}
	}

	absRoot, err := filepath.Abs(ExpandPath(root))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve scan path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan path is not a directory: %s", absRoot)
	}

	osRoot, err := os.OpenRoot(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot open scan root: %w", err)
	}
	defer osRoot.Close()

	c := &collector{root: osRoot, opts: opts, maxDepth: opts.MaxDepth}
	if c.maxDepth <= 0 {
		c.maxDepth = defaultMaxDepth
	}
	if err := c.walk(".", 1); err != nil {
		return nil, fmt.Errorf("directory scan failed: %w", err)
	}
	return c.files, nil
}

type collector struct {
	root     *os.Root
	opts     *CollectOptions
	maxDepth int
	files    []string
}

func (c *collector) walk(dir string, depth int) error {
	if depth > c.maxDepth {
		return nil
	}

	f, err := c.root.Open(dir)
	if err != nil {
		if c.opts.SkipUnreadableDirs {
			return nil
		}
		return fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		if c.opts.SkipUnreadableDirs {
			return nil
		}
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	for _, entry := range entries {
		name := entry.Name()
		if !c.opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}

		entryPath := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			if slices.Contains(c.opts.SkipDirs, name) {
				continue
			}
			if err := c.walk(entryPath, depth+1); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if c.opts.FileFilter == nil || c.opts.FileFilter(name) {
				c.files = append(c.files, entryPath)
			}
		}
	}
	return nil
}
