package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureParent creates the parent directory of path if it does not exist.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// WriteStream copies r verbatim to path, creating parent directories as
// needed. Returns the number of bytes written.
func WriteStream(path string, r io.Reader) (int64, error) {
	if err := EnsureParent(path); err != nil {
		return 0, err
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	written, err := io.Copy(out, r)
	if err != nil {
		return written, err
	}
	return written, out.Close()
}

// WriteBytes writes data to path, creating parent directories as needed.
func WriteBytes(path string, data []byte) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
