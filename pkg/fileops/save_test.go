package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileCheckingFileChanged(t *testing.T) {
	t.Run("new file is reported as changed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.po")

		changed, err := SaveFileCheckingFileChanged(path, "msgid \"\"\n", "utf-8")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "msgid \"\"\n", readFileContent(t, path))
	})

	t.Run("same content twice reports true then false", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		first, err := SaveFileCheckingFileChanged(path, "hello", "utf-8")
		require.NoError(t, err)
		second, err := SaveFileCheckingFileChanged(path, "hello", "utf-8")
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
		assert.Equal(t, "hello", readFileContent(t, path))
	})

	t.Run("different content reports changed again", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		results := make([]bool, 0, 3)
		for _, content := range []string{"hello", "hello", "goodbye"} {
			changed, err := SaveFileCheckingFileChanged(path, content, "")
			require.NoError(t, err)
			results = append(results, changed)
		}

		assert.Equal(t, []bool{true, false, true}, results)
		assert.Equal(t, "goodbye", readFileContent(t, path))
	})

	t.Run("shorter content truncates the file", func(t *testing.T) {
		path := createTestFile(t, t.TempDir(), "trunc.md", "a much longer original text")

		changed, err := SaveFileCheckingFileChanged(path, "short", "utf-8")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "short", readFileContent(t, path))
	})

	t.Run("unchanged file is still rewritten", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not enforced on windows")
		}
		if os.Getuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		path := createTestFile(t, t.TempDir(), "ro.md", "same")
		require.NoError(t, os.Chmod(path, 0444))
		t.Cleanup(func() { os.Chmod(path, 0644) })

		_, err := SaveFileCheckingFileChanged(path, "same", "utf-8")
		assert.Error(t, err, "the write must be attempted even when content is identical")
	})

	t.Run("content is written in the requested encoding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latin1.po")

		changed, err := SaveFileCheckingFileChanged(path, "café", "latin-1")
		require.NoError(t, err)
		assert.True(t, changed)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, data)
	})

	t.Run("encoding error leaves the file untouched", func(t *testing.T) {
		path := createTestFile(t, t.TempDir(), "keep.md", "original")

		_, err := SaveFileCheckingFileChanged(path, "日本語", "latin-1")
		assert.ErrorIs(t, err, ErrEncode)
		assert.Equal(t, "original", readFileContent(t, path))
	})

	t.Run("ascii rejects non-ascii content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ascii.md")

		changed, err := SaveFileCheckingFileChanged(path, "café", "ascii")
		assert.ErrorIs(t, err, ErrEncode)
		assert.False(t, changed)
		assert.NoFileExists(t, path)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "x.md")

		_, err := SaveFileCheckingFileChanged(path, "x", "klingon")
		assert.ErrorIs(t, err, ErrUnknownEncoding)
		assert.NoFileExists(t, path)
	})

	t.Run("missing parent directory is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.md")

		_, err := SaveFileCheckingFileChanged(path, "x", "utf-8")
		assert.Error(t, err)
	})

	t.Run("directory target is an error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := SaveFileCheckingFileChanged(dir, "x", "utf-8")
		assert.Error(t, err)
	})
}
