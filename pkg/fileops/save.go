package fileops

import (
	"fmt"
	"os"
)

// SaveFileCheckingFileChanged writes content to path and reports whether the
// write changed what was stored there.
//
// A path that is not an existing file is created and reported as changed.
// An existing file is hashed, fully overwritten and hashed again; the result
// is whether the two digests differ. The file is rewritten even when the
// content is identical.
//
// Parameters:
//   - path: Target file; its parent directory must exist
//   - content: Text to store
//   - encoding: Encoding used to write content ("" means UTF-8)
//
// Returns:
//   - bool: true if the file was created or its content changed
//   - error: ErrUnknownEncoding or ErrEncode before anything is written,
//     otherwise I/O errors from hashing or writing
//
// New files are created with permissions 0644; existing files keep theirs.
// The write is not atomic and concurrent calls on one path are not
// coordinated.
func SaveFileCheckingFileChanged(path, content, encoding string) (bool, error) {
	codec, err := LookupEncoding(encoding)
	if err != nil {
		return false, err
	}
	data, err := codec.Encode(content)
	if err != nil {
		return false, err
	}

	if !IsFile(path) {
		if err := writeFile(path, data); err != nil {
			return false, err
		}
		return true, nil
	}

	preHash, err := FileHash(path)
	if err != nil {
		return false, err
	}
	if err := writeFile(path, data); err != nil {
		return false, err
	}
	postHash, err := FileHash(path)
	if err != nil {
		return false, err
	}

	return preHash != postHash, nil
}

// writeFile truncates or creates path and writes data to it.
func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for writing: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}
