package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/fenilsonani/mediafind/internal/progress"
	"github.com/fenilsonani/mediafind/internal/testutil"
)

func TestCoordinatorMergesRoots(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movies/a.mkv", []byte("x"))
	f.CreateFile("shows/b.mkv", []byte("x"))
	f.CreateFile("downloads/c.mkv", []byte("x"))

	c := &Coordinator{
		Roots: []string{f.MoviesDir, f.ShowsDir, f.DownloadsDir},
	}
	results := c.Scan()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	assertPaths(t, results, []string{
		filepath.Join(f.DownloadsDir, "c.mkv"),
		filepath.Join(f.MoviesDir, "a.mkv"),
		filepath.Join(f.ShowsDir, "b.mkv"),
	})
}

func TestCoordinatorSkipsMissingRoots(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movies/a.mkv", []byte("x"))

	var warned []string
	c := &Coordinator{
		Roots: []string{f.MoviesDir, filepath.Join(f.RootDir, "nope")},
		Warn:  func(path string, err error) { warned = append(warned, path) },
	}
	results := c.Scan()
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
	if len(warned) != 1 {
		t.Errorf("got %d warnings, want 1", len(warned))
	}
}

func TestCoordinatorContinuesPastUnreadableRoot(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movies/a.mkv", []byte("x"))
	// A regular file passed as a root stats fine but can't be read as a
	// directory, like a dead mount point.
	badRoot := f.CreateFile("notadir", []byte("x"))

	var warned []string
	c := &Coordinator{
		Roots: []string{f.MoviesDir, badRoot},
		Warn:  func(path string, err error) { warned = append(warned, path) },
	}
	results := c.Scan()

	assertPaths(t, results, []string{filepath.Join(f.MoviesDir, "a.mkv")})
	found := false
	for _, w := range warned {
		if w == badRoot {
			found = true
		}
	}
	if !found {
		t.Errorf("unreadable root not warned about, warnings = %v", warned)
	}
}

func TestCoordinatorCountsViaTracker(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movies/a.mkv", []byte("x"))
	f.CreateFile("movies/b.mkv", []byte("x"))
	f.CreateFile("shows/c.mkv", []byte("x"))

	tracker := progress.NewTracker(0)
	c := &Coordinator{
		Roots:   []string{f.MoviesDir, f.ShowsDir},
		Tracker: tracker,
	}
	c.Scan()
	if got := tracker.Found(); got != 3 {
		t.Errorf("tracker counted %d files, want 3", got)
	}
}

func TestCoordinatorModTimeDisablesFD(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movies/a.mkv", []byte("x"))

	// With modification times requested, the native walk must run even
	// when fd is preferred, since fd can't provide them.
	c := &Coordinator{
		Roots:       []string{f.MoviesDir},
		WithModTime: true,
		PreferFD:    true,
	}
	results := c.Scan()
	if len(results) != 1 || !results[0].HasModTime {
		t.Fatalf("expected one result with a modification time, got %+v", results)
	}
}

// fakeFD installs a shell script named fd as the only entry on PATH, so
// FindFD resolves to it.
func fakeFD(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fd")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake fd: %v", err)
	}
	t.Setenv("PATH", dir)
}

func TestScanWithFDParsesOutput(t *testing.T) {
	fakeFD(t, "#!/bin/sh\nprintf '/media/a.mkv\\n\\n/media/sub/b.mkv\\n'\n")

	fdPath, err := FindFD()
	if err != nil {
		t.Fatalf("FindFD failed: %v", err)
	}

	var results Results
	err = ScanWithFD(fdPath, "/media", func(e FileEntry) { results = append(results, e) })
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	// Blank lines dropped, no modification times in this mode.
	assertPaths(t, results, []string{"/media/a.mkv", "/media/sub/b.mkv"})
	for _, e := range results {
		if e.HasModTime {
			t.Errorf("%s unexpectedly carries a modification time", e.Path)
		}
	}
}

func TestScanWithFDReportsFailure(t *testing.T) {
	fakeFD(t, "#!/bin/sh\necho 'boom' >&2\nexit 1\n")

	fdPath, err := FindFD()
	if err != nil {
		t.Fatalf("FindFD failed: %v", err)
	}
	if err := ScanWithFD(fdPath, "/media", func(FileEntry) {}); err == nil {
		t.Fatal("expected error from failing fd")
	}
}

func TestFallbackMatchesNativeScan(t *testing.T) {
	fakeFD(t, "#!/bin/sh\nexit 1\n")

	f := testutil.NewFixture(t)
	f.CreateFile("movies/a.mp4", []byte("x"))
	f.CreateFile("movies/b.mkv", []byte("x"))

	native := collectWalk(t, f.MoviesDir, false)

	var warned bool
	c := &Coordinator{
		Roots:    []string{f.MoviesDir},
		PreferFD: true,
		Warn:     func(path string, err error) { warned = true },
	}
	viaFallback := c.Scan()
	sort.Slice(viaFallback, func(i, j int) bool { return viaFallback[i].Path < viaFallback[j].Path })

	assertPaths(t, viaFallback, paths(native))
	if !warned {
		t.Error("fd failure should surface a warning")
	}
}

func TestFindFDUnknownIsError(t *testing.T) {
	// FindFD can succeed or fail depending on the host; it must never
	// return an empty path without an error.
	path, err := FindFD()
	if err == nil && path == "" {
		t.Error("FindFD returned empty path without error")
	}
}
