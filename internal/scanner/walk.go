package scanner

import (
	"os"
	"path/filepath"
)

// WarnFunc receives non-fatal scan problems (unreadable directories,
// vanished files). A nil WarnFunc silently drops them.
type WarnFunc func(path string, err error)

// Walker is the native recursive scanner. It traverses a directory tree
// with os.ReadDir, reporting every regular file through OnFile. Symlinks
// are never followed, whether they point at files or directories.
type Walker struct {
	// WithModTime captures each file's modification time. This costs a
	// stat per file, so the fd path (which can't provide mtimes) is
	// preferred when timestamps aren't needed.
	WithModTime bool

	// OnFile is called for every discovered file, from the walking
	// goroutine.
	OnFile func(FileEntry)

	// Warn receives skipped-subtree and stat failures.
	Warn WarnFunc
}

func (w *Walker) warn(path string, err error) {
	if w.Warn != nil {
		w.Warn(path, err)
	}
}

// Walk scans root recursively. Unreadable directories are reported via
// Warn and their subtrees skipped; only a failure to read the root
// itself is an error.
func (w *Walker) Walk(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	w.walkEntries(root, entries)
	return nil
}

func (w *Walker) walkEntries(dir string, entries []os.DirEntry) {
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}

		if entry.IsDir() {
			children, err := os.ReadDir(full)
			if err != nil {
				w.warn(full, err)
				continue
			}
			w.walkEntries(full, children)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		result := FileEntry{Path: full}
		if w.WithModTime {
			info, err := entry.Info()
			if err != nil {
				// The file vanished between ReadDir and stat.
				w.warn(full, err)
				continue
			}
			result.ModTime = info.ModTime()
			result.HasModTime = true
		}
		w.OnFile(result)
	}
}
