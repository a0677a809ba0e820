package ioutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "run.txt")

	if err := WriteFile(context.Background(), path, []byte("OMGHAI!\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "OMGHAI!\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteTo_Stdout(t *testing.T) {
	for _, path := range []string{"", StdoutPath} {
		var buf bytes.Buffer
		if err := writeTo(context.Background(), path, []byte("day 0"), &buf); err != nil {
			t.Fatalf("writeTo(%q) error = %v", path, err)
		}
		if buf.String() != "day 0" {
			t.Errorf("writeTo(%q) wrote %q", path, buf.String())
		}
	}
}

func TestWriteFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "run.txt")
	if err := WriteFile(ctx, path, []byte("x")); err == nil {
		t.Fatal("WriteFile() expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be created")
	}
}
