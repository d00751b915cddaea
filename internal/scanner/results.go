package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileEntry represents one file discovered during scanning. ModTime is
// only populated when the scan captured it; HasModTime distinguishes a
// missing timestamp from the zero time.
type FileEntry struct {
	Path       string
	ModTime    time.Time
	HasModTime bool
}

// Name returns the filename component of the entry's path.
func (e FileEntry) Name() string {
	return filepath.Base(e.Path)
}

// Dir returns the directory component of the entry's path.
func (e FileEntry) Dir() string {
	return filepath.Dir(e.Path)
}

// Ext returns the lowercase file extension including the leading dot.
func (e FileEntry) Ext() string {
	return strings.ToLower(filepath.Ext(e.Path))
}

// Results is an ordered collection of scan results. Scanners produce
// entries in traversal order; a meaningful order only exists after an
// explicit sort.
type Results []FileEntry

// FromPaths builds a collection from serialized path strings. Paths are
// stored with forward slashes and converted back to the platform form.
func FromPaths(paths []string) Results {
	results := make(Results, 0, len(paths))
	for _, p := range paths {
		results = append(results, FileEntry{Path: filepath.FromSlash(p)})
	}
	return results
}

// Paths returns the entry paths in collection order, with forward
// slashes for serialization.
func (r Results) Paths() []string {
	paths := make([]string, 0, len(r))
	for _, entry := range r {
		paths = append(paths, filepath.ToSlash(entry.Path))
	}
	return paths
}

// FilterExtensions retains only entries whose lowercase extension is in
// allowed. A nil or empty set leaves the collection unchanged.
func (r *Results) FilterExtensions(allowed map[string]bool) {
	if len(allowed) == 0 {
		return
	}

	kept := (*r)[:0]
	for _, entry := range *r {
		if allowed[entry.Ext()] {
			kept = append(kept, entry)
		}
	}
	*r = kept
}

// FilterPattern retains only entries whose filename matches the glob
// pattern, case-insensitively. The pattern is evaluated against the
// filename component only. The universal wildcard is a no-op.
func (r *Results) FilterPattern(pattern string) error {
	if pattern == "*" {
		return nil
	}

	lowered := strings.ToLower(pattern)
	if _, err := path.Match(lowered, "probe"); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	kept := (*r)[:0]
	for _, entry := range *r {
		if ok, _ := path.Match(lowered, strings.ToLower(entry.Name())); ok {
			kept = append(kept, entry)
		}
	}
	*r = kept
	return nil
}

// SortByName sorts by filename, case-insensitive, ascending by default.
func (r Results) SortByName(reverse bool) {
	sort.SliceStable(r, func(i, j int) bool {
		a, b := strings.ToLower(r[i].Name()), strings.ToLower(r[j].Name())
		if reverse {
			return a > b
		}
		return a < b
	})
}

// SortByModTime sorts by modification time, newest first by default.
// It fails if any entry lacks a modification time; a missing timestamp
// is never treated as zero.
func (r Results) SortByModTime(reverse bool) error {
	missing := 0
	for _, entry := range r {
		if !entry.HasModTime {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("can't sort by modification time: %d of %d entries lack one", missing, len(r))
	}

	sort.SliceStable(r, func(i, j int) bool {
		if reverse {
			return r[i].ModTime.Before(r[j].ModTime)
		}
		return r[i].ModTime.After(r[j].ModTime)
	})
	return nil
}

// Head returns the first n entries, or all of them when fewer exist.
func (r Results) Head(n int) Results {
	if n >= len(r) {
		return r
	}
	return r[:n]
}
