package ioutils

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// StdoutPath is the path value that selects standard output.
const StdoutPath = "-"

// WriteFile writes data to path, creating parent directories if necessary.
//
// The file is created with mode 0644. If the file already exists, it is
// truncated before writing. An empty path or StdoutPath writes to stdout.
//
// Example:
//
//	err := WriteFile(ctx, "/reports/run.json", data)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return writeTo(ctx, path, data, os.Stdout)
}

// writeTo is WriteFile with an injectable stdout.
func writeTo(ctx context.Context, path string, data []byte, stdout io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path == "" || path == StdoutPath {
		_, err := stdout.Write(data)
		return err
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
