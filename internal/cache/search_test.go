package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fenilsonani/mediafind/internal/testutil"
)

func testSearchCache(f *testutil.TestFixture) *SearchCache {
	return &SearchCache{Path: filepath.Join(f.CacheDir, "last_search.json")}
}

func TestSearchCacheRoundTrip(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	a := f.CreateFile("movies/alien.mkv", []byte("x"))
	b := f.CreateFile("movies/aliens.mkv", []byte("x"))

	if err := sc.Save("*alien*", []string{a, b}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	result, err := sc.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if result.Pattern != "*alien*" {
		t.Errorf("pattern = %q, want *alien*", result.Pattern)
	}
	if len(result.Results) != 2 {
		t.Errorf("got %d results, want 2", len(result.Results))
	}
	if result.LastPlayedIndex != nil {
		t.Error("fresh search should have no last played index")
	}
}

func TestSearchCacheMissing(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	if _, err := sc.Load(); !errors.Is(err, ErrNoSearch) {
		t.Errorf("Load on missing cache = %v, want ErrNoSearch", err)
	}
}

func TestSearchCacheCorrupted(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	if err := os.WriteFile(sc.Path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := sc.Load(); !errors.Is(err, ErrNoSearch) {
		t.Errorf("Load on corrupted cache = %v, want ErrNoSearch", err)
	}
}

func TestResultByIndex(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	a := f.CreateFile("movies/alien.mkv", []byte("x"))
	b := f.CreateFile("movies/aliens.mkv", []byte("x"))
	if err := sc.Save("*alien*", []string{a, b}); err != nil {
		t.Fatal(err)
	}

	t.Run("valid index", func(t *testing.T) {
		path, err := sc.ResultByIndex(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != b {
			t.Errorf("got %s, want %s", path, b)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, index := range []int{0, -1, 3} {
			if _, err := sc.ResultByIndex(index); err == nil {
				t.Errorf("index %d: expected error", index)
			}
		}
	})

	t.Run("deleted file", func(t *testing.T) {
		if err := os.Remove(a); err != nil {
			t.Fatal(err)
		}
		if _, err := sc.ResultByIndex(1); err == nil {
			t.Error("expected error for deleted file")
		}
		// Other indexes stay valid; the list is not reshuffled.
		if _, err := sc.ResultByIndex(2); err != nil {
			t.Errorf("index 2 should still resolve: %v", err)
		}
	})
}

func TestPlayNextIteration(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	a := f.CreateFile("movies/e1.mkv", []byte("x"))
	b := f.CreateFile("movies/e2.mkv", []byte("x"))
	if err := sc.Save("*e*", []string{a, b}); err != nil {
		t.Fatal(err)
	}

	index, path, err := sc.Next()
	if err != nil {
		t.Fatalf("first next failed: %v", err)
	}
	if index != 1 || path != a {
		t.Errorf("first next = (%d, %s), want (1, %s)", index, path, a)
	}
	if err := sc.SaveLastPlayed(index); err != nil {
		t.Fatal(err)
	}

	index, path, err = sc.Next()
	if err != nil {
		t.Fatalf("second next failed: %v", err)
	}
	if index != 2 || path != b {
		t.Errorf("second next = (%d, %s), want (2, %s)", index, path, b)
	}
	if err := sc.SaveLastPlayed(index); err != nil {
		t.Fatal(err)
	}

	if _, _, err := sc.Next(); err == nil {
		t.Error("expected end-of-list error")
	}
}

func TestSaveResetsLastPlayed(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	a := f.CreateFile("movies/e1.mkv", []byte("x"))
	if err := sc.Save("*", []string{a}); err != nil {
		t.Fatal(err)
	}
	if err := sc.SaveLastPlayed(1); err != nil {
		t.Fatal(err)
	}
	if err := sc.Save("*", []string{a}); err != nil {
		t.Fatal(err)
	}

	result, err := sc.Load()
	if err != nil {
		t.Fatal(err)
	}
	if result.LastPlayedIndex != nil {
		t.Error("saving a new search should reset the last played index")
	}
}

func TestSaveLastPlayedOutOfRange(t *testing.T) {
	f := testutil.NewFixture(t)
	sc := testSearchCache(f)

	a := f.CreateFile("movies/e1.mkv", []byte("x"))
	if err := sc.Save("*", []string{a}); err != nil {
		t.Fatal(err)
	}
	if err := sc.SaveLastPlayed(5); err == nil {
		t.Error("expected error for out-of-range index")
	}
}
