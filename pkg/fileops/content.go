package fileops

import (
	"fmt"
	"os"
)

// ToFileContentIfIsFile returns the decoded content of value when value names
// an existing regular file, and value itself otherwise.
//
// Parameters:
//   - value: A file path or literal content
//   - encoding: Encoding of the file, if value is a file ("" means UTF-8)
//
// Returns:
//   - string: File content, or value as is
//   - error: Read errors, ErrUnknownEncoding, or ErrDecode when the file bytes
//     are invalid in the encoding. A missing path is not an error.
//
// Directories are not files, so a directory path is returned unchanged.
func ToFileContentIfIsFile(value, encoding string) (string, error) {
	if !IsFile(value) {
		return value, nil
	}

	codec, err := LookupEncoding(encoding)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", value, err)
	}

	content, err := codec.Decode(data)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", value, err)
	}
	return content, nil
}

// IsFile reports whether path exists and is a regular file, following symlinks.
func IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
