// Package fsutil lists directories lazily.
package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"syscall"
)

// ErrNotDirectory is returned when ReadDir is given a path that is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// batchSize is how many entries are fetched from the OS per read.
const batchSize = 128

// DirEntry describes one entry of a directory.
type DirEntry struct {
	Name        string
	IsFile      bool
	IsDirectory bool
	IsSymlink   bool
}

// Kind returns "dir", "file", "symlink" or "other".
func (e DirEntry) Kind() string {
	switch {
	case e.IsSymlink:
		return "symlink"
	case e.IsDirectory:
		return "dir"
	case e.IsFile:
		return "file"
	default:
		return "other"
	}
}

func toDirEntry(d fs.DirEntry) DirEntry {
	t := d.Type()
	return DirEntry{
		Name:        d.Name(),
		IsFile:      t.IsRegular(),
		IsDirectory: t.IsDir(),
		IsSymlink:   t&fs.ModeSymlink != 0,
	}
}

// ReadDir returns the entries of the directory at path as a lazy sequence.
// The directory is opened when iteration starts and read in batches, and the
// order of entries is not guaranteed. Each range over the sequence reads the
// directory afresh. Iteration ends after the first error.
func ReadDir(path string) iter.Seq2[DirEntry, error] {
	return func(yield func(DirEntry, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(DirEntry{}, mapError(err))
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			yield(DirEntry{}, err)
			return
		}
		if !info.IsDir() {
			yield(DirEntry{}, &fs.PathError{Op: "readdir", Path: path, Err: ErrNotDirectory})
			return
		}

		for {
			entries, err := f.ReadDir(batchSize)
			for _, e := range entries {
				if !yield(toDirEntry(e), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(DirEntry{}, mapError(err))
				return
			}
		}
	}
}

// mapError rewrites "not a directory" failures to wrap ErrNotDirectory while
// keeping the *fs.PathError shape, so callers can test for it with errors.Is
// next to fs.ErrNotExist and fs.ErrPermission.
func mapError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) && errors.Is(pe.Err, syscall.ENOTDIR) {
		return &fs.PathError{Op: "readdir", Path: pe.Path, Err: ErrNotDirectory}
	}
	return err
}
