package scanner

import (
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/fenilsonani/mediafind/internal/testutil"
)

func collectWalk(t *testing.T, root string, withModTime bool) Results {
	t.Helper()

	var results Results
	w := &Walker{
		WithModTime: withModTime,
		OnFile:      func(e FileEntry) { results = append(results, e) },
	}
	if err := w.Walk(root); err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results
}

func TestWalkFindsNestedFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movies/alien.mkv", []byte("x"))
	f.CreateFile("movies/sub/aliens.mkv", []byte("x"))
	f.CreateFile("movies/sub/deep/alien3.mkv", []byte("x"))

	results := collectWalk(t, f.MoviesDir, false)
	want := []string{
		filepath.Join(f.MoviesDir, "alien.mkv"),
		filepath.Join(f.MoviesDir, "sub", "aliens.mkv"),
		filepath.Join(f.MoviesDir, "sub", "deep", "alien3.mkv"),
	}
	assertPaths(t, results, want)
}

func TestWalkSkipsSymlinks(t *testing.T) {
	f := testutil.NewFixture(t)
	target := f.CreateFile("shows/episode.mkv", []byte("x"))
	f.CreateSymlink(target, "movies/link.mkv")
	f.CreateSymlink(f.ShowsDir, "movies/linked-dir")
	f.CreateFile("movies/real.mkv", []byte("x"))

	results := collectWalk(t, f.MoviesDir, false)
	assertPaths(t, results, []string{filepath.Join(f.MoviesDir, "real.mkv")})
}

func TestWalkModTimes(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateMediaFile("old.mkv", 48*time.Hour)

	t.Run("captured when requested", func(t *testing.T) {
		results := collectWalk(t, f.MoviesDir, true)
		if len(results) != 1 {
			t.Fatalf("got %d results, want 1", len(results))
		}
		if !results[0].HasModTime {
			t.Error("expected modification time to be set")
		}
	})

	t.Run("absent otherwise", func(t *testing.T) {
		results := collectWalk(t, f.MoviesDir, false)
		if len(results) != 1 {
			t.Fatalf("got %d results, want 1", len(results))
		}
		if results[0].HasModTime {
			t.Error("expected no modification time")
		}
	})
}

func TestWalkMissingRoot(t *testing.T) {
	w := &Walker{OnFile: func(FileEntry) {}}
	if err := w.Walk("/nonexistent/mediafind-test-root"); err == nil {
		t.Fatal("expected error for missing root")
	}
}
