package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fenilsonani/mediafind/internal/scanner"
)

// Snapshot is the serialized form of the library cache: the scan time
// and every file path known at that moment, newest first.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Files     []string  `json:"files"`
}

// Library manages the on-disk library cache. The cache is best-effort:
// a missing, corrupted, or expired file triggers a rescan via the
// injected Scan function rather than an error.
type Library struct {
	// Path is the cache file location.
	Path string

	// TTL is how long a snapshot stays fresh. Zero means forever.
	TTL time.Duration

	// Scan performs a full library scan with modification times.
	Scan func() (scanner.Results, error)

	// Now is the clock, injectable for tests. Nil means time.Now.
	Now func() time.Time
}

func (l *Library) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// read parses the cache file. Corruption is reported as an error so
// callers can decide between rebuilding and returning empty.
func (l *Library) read() (*Snapshot, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupted library cache at %s: %w", l.Path, err)
	}
	return &snap, nil
}

// Expired reports whether the cache needs rebuilding: missing or
// unreadable counts as expired, a zero TTL never expires.
func (l *Library) Expired() bool {
	snap, err := l.read()
	if err != nil {
		return true
	}
	if l.TTL == 0 {
		return false
	}
	return l.now().Sub(snap.Timestamp) > l.TTL
}

// Load returns the library file list, rebuilding the cache first when
// it is missing, corrupted, or expired. The returned entries carry no
// modification times; their order is the snapshot's newest-first order.
func (l *Library) Load() (scanner.Results, error) {
	if !l.Expired() {
		snap, err := l.read()
		if err == nil {
			return scanner.FromPaths(snap.Files), nil
		}
	}
	return l.Rebuild()
}

// Rebuild rescans the library and writes a fresh snapshot. The scan
// results are sorted newest first; the write is atomic (temp file then
// rename) so a crash never leaves a half-written cache behind.
func (l *Library) Rebuild() (scanner.Results, error) {
	results, err := l.Scan()
	if err != nil {
		return nil, err
	}
	if err := results.SortByModTime(false); err != nil {
		return nil, err
	}

	snap := Snapshot{
		Timestamp: l.now(),
		Files:     results.Paths(),
	}
	if err := l.write(&snap); err != nil {
		return nil, err
	}
	return results, nil
}

func (l *Library) write(snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.Path), ".library-*.json")
	if err != nil {
		return fmt.Errorf("writing library cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing library cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing library cache: %w", err)
	}
	return os.Rename(tmp.Name(), l.Path)
}

// Size returns the number of cached files without triggering a
// rebuild. Missing or corrupted caches report zero.
func (l *Library) Size() int64 {
	snap, err := l.read()
	if err != nil {
		return 0
	}
	return int64(len(snap.Files))
}

// Timestamp returns the snapshot time, or the zero time when no valid
// cache exists.
func (l *Library) Timestamp() time.Time {
	snap, err := l.read()
	if err != nil {
		return time.Time{}
	}
	return snap.Timestamp
}

// Clear deletes the cache file. A missing file is not an error.
func (l *Library) Clear() error {
	err := os.Remove(l.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
