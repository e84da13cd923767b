package fileops

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileHash computes the MD5 digest of the file at path and returns it as 32
// lowercase hex characters. The file is streamed through the hash, so large
// files are not loaded into memory.
//
// The digest is only meant for change detection, not for integrity or
// security checks.
//
// Errors from opening or reading the file are wrapped, so errors.Is works
// with fs.ErrNotExist and fs.ErrPermission.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer f.Close()

	hasher := md5.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
