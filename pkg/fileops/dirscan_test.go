package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempDirStructure(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	structure := map[string]string{
		"README.md":                 "readme",
		"docs/index.md":             "index",
		"docs/guide/install.md":     "install",
		"docs/guide/notes.txt":      "notes",
		"docs/.hidden.md":           "hidden",
		".git/config":               "git",
		"node_modules/pkg/index.md": "dep",
		"locale/es/index.po":        "po",
	}
	for path, content := range structure {
		createTestFile(t, dir, filepath.FromSlash(path), content)
	}
	return dir
}

func TestCollectFiles(t *testing.T) {
	dir := createTempDirStructure(t)
	p := filepath.FromSlash

	t.Run("default options", func(t *testing.T) {
		files, err := CollectFiles(dir, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"README.md",
			p("docs/guide/install.md"),
			p("docs/guide/notes.txt"),
			p("docs/index.md"),
			p("locale/es/index.po"),
		}, files)
	})

	t.Run("markdown filter", func(t *testing.T) {
		files, err := CollectFiles(dir, &CollectOptions{
			SkipDirs:   DefaultSkipDirs(),
			FileFilter: IsMarkdownFile,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"README.md",
			p("docs/guide/install.md"),
			p("docs/index.md"),
		}, files)
	})

	t.Run("hidden files included on request", func(t *testing.T) {
		files, err := CollectFiles(dir, &CollectOptions{
			IncludeHidden: true,
			SkipDirs:      []string{".git", "node_modules"},
		})
		require.NoError(t, err)

		assert.Contains(t, files, p("docs/.hidden.md"))
		assert.NotContains(t, files, p(".git/config"))
	})

	t.Run("max depth", func(t *testing.T) {
		files, err := CollectFiles(dir, &CollectOptions{MaxDepth: 1})
		require.NoError(t, err)

		assert.Equal(t, []string{"README.md"}, files)
	})

	t.Run("feeds FilterPaths", func(t *testing.T) {
		files, err := CollectFiles(dir, nil)
		require.NoError(t, err)

		kept := FilterPaths(files, "guide", "README.md")
		assert.Equal(t, []string{p("docs/index.md"), p("locale/es/index.po")}, kept)
	})
}

func TestCollectFiles_SkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := createTempDirStructure(t)
	outside := t.TempDir()
	createTestFile(t, outside, "secret.md", "secret")

	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "README.md"), filepath.Join(dir, "alias.md")))

	files, err := CollectFiles(dir, nil)
	require.NoError(t, err)

	assert.NotContains(t, files, filepath.Join("linked", "secret.md"))
	assert.NotContains(t, files, "alias.md")
}

func TestCollectFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	file := createTestFile(t, dir, "file.md", "x")

	tests := []struct {
		name string
		root string
	}{
		{name: "empty path", root: "  "},
		{name: "missing directory", root: filepath.Join(dir, "missing")},
		{name: "file instead of directory", root: file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := CollectFiles(tt.root, nil)
			assert.Error(t, err)
			assert.Nil(t, files)
		})
	}
}

func TestIsMarkdownFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"README.md", true},
		{"guide.MARKDOWN", true},
		{"notes.mkd", true},
		{"catalog.po", false},
		{"md", false},
		{"archive.md.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMarkdownFile(tt.filename))
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "docs", "a.md"), ExpandPath("~/docs/a.md"))
	assert.Equal(t, "relative/a.md", ExpandPath("relative/a.md"))
	assert.Equal(t, "~user/a.md", ExpandPath("~user/a.md"))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	require.NoError(t, EnsureDirectoryExists(dir))
	assert.DirExists(t, dir)

	file := createTestFile(t, t.TempDir(), "file", "x")
	assert.Error(t, EnsureDirectoryExists(filepath.Join(file, "sub")))
}
