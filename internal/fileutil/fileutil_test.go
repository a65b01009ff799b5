package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteStreamCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "out.bin")

	n, err := WriteStream(path, strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("WriteStream: %v", err)
	}
	if n != int64(len("payload")) {
		t.Fatalf("expected %d bytes written, got %d", len("payload"), n)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestWriteStreamTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	if err := os.WriteFile(path, []byte("a much longer original payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteStream(path, strings.NewReader("short")); err != nil {
		t.Fatalf("WriteStream: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short" {
		t.Fatalf("expected truncated rewrite, got %q", got)
	}
}

func TestWriteBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "data.png")

	if err := WriteBytes(path, []byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("content mismatch: %v", got)
	}
}
