package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func collect(t *testing.T, path string) ([]DirEntry, error) {
	t.Helper()
	var entries []DirEntry
	for e, err := range ReadDir(path) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func TestReadDirListsEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("a.txt", filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	entries, err := collect(t, dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	want := []DirEntry{
		{Name: "a.txt", IsFile: true},
		{Name: "link", IsSymlink: true},
		{Name: "sub", IsDirectory: true},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, entries[i], want[i])
		}
	}
	if entries[2].Kind() != "dir" || entries[1].Kind() != "symlink" || entries[0].Kind() != "file" {
		t.Errorf("unexpected kinds: %s %s %s", entries[0].Kind(), entries[1].Kind(), entries[2].Kind())
	}
}

func TestReadDirManyEntriesAcrossBatches(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < batchSize*2+5; i++ {
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%03d", i)), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := collect(t, dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != batchSize*2+5 {
		t.Fatalf("got %d entries, want %d", len(entries), batchSize*2+5)
	}
}

func TestReadDirEmpty(t *testing.T) {
	entries, err := collect(t, t.TempDir())
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestReadDirStopsEarly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	n := 0
	for range ReadDir(dir) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected to stop after one entry, got %d", n)
	}
}

func TestReadDirMissing(t *testing.T) {
	_, err := collect(t, filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestReadDirNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := collect(t, file)
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Path != file {
		t.Fatalf("expected *fs.PathError for %s, got %#v", file, err)
	}
}
