package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the cache directory, honoring the platform convention:
// $XDG_CACHE_HOME/mf (or ~/.cache/mf) on POSIX, %LOCALAPPDATA%\mf on
// Windows.
func Dir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating cache directory: %w", err)
	}
	return filepath.Join(base, "mf"), nil
}

// LibraryFile returns the library cache file path.
func LibraryFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "library.json"), nil
}

// SearchFile returns the last-search cache file path.
func SearchFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "last_search.json"), nil
}
