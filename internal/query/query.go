package query

import (
	"fmt"
	"strings"

	"github.com/fenilsonani/mediafind/internal/cache"
	"github.com/fenilsonani/mediafind/internal/config"
	"github.com/fenilsonani/mediafind/internal/scanner"
)

// ScanFunc performs a live filesystem scan over the configured roots,
// optionally capturing modification times.
type ScanFunc func(withModTime bool) (scanner.Results, error)

// Env bundles everything a query needs: the configuration, the library
// cache, and a live scanner for when caching is off.
type Env struct {
	Config  *config.Config
	Library *cache.Library
	Scan    ScanFunc
}

// NormalizePattern turns a bare substring into a containment glob: a
// pattern with no glob metacharacters matches anywhere in the filename,
// so "alien" becomes "*alien*". Patterns that already use globbing are
// left alone.
func NormalizePattern(pattern string) string {
	if pattern == "" {
		return "*"
	}
	if strings.ContainsAny(pattern, "*?[]") {
		return pattern
	}
	return "*" + pattern + "*"
}

// library returns the full file list, from the cache when enabled and
// from a live scan otherwise. Cached entries come back newest first.
func (e *Env) library() (scanner.Results, error) {
	if e.Config.CacheLibrary {
		return e.Library.Load()
	}
	return e.Scan(false)
}

// All returns the full library with the extension filter applied.
func (e *Env) All() (scanner.Results, error) {
	results, err := e.library()
	if err != nil {
		return nil, err
	}
	results.FilterExtensions(e.Config.ExtensionSet())
	return results, nil
}

// Find returns all library files whose name matches pattern, sorted by
// name. It also returns the normalized pattern actually used, for
// display and for the search cache.
func (e *Env) Find(pattern string) (scanner.Results, string, error) {
	normalized := NormalizePattern(pattern)

	results, err := e.library()
	if err != nil {
		return nil, normalized, err
	}

	results.FilterExtensions(e.Config.ExtensionSet())
	if err := results.FilterPattern(normalized); err != nil {
		return nil, normalized, err
	}
	results.SortByName(false)
	return results, normalized, nil
}

// Newest returns the n most recently modified library files. With the
// cache enabled the snapshot's newest-first order is reused; otherwise
// a live scan with modification times is sorted here.
func (e *Env) Newest(n int) (scanner.Results, error) {
	if n <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", n)
	}

	if e.Config.CacheLibrary {
		results, err := e.Library.Load()
		if err != nil {
			return nil, err
		}
		results.FilterExtensions(e.Config.ExtensionSet())
		return results.Head(n), nil
	}

	results, err := e.Scan(true)
	if err != nil {
		return nil, err
	}
	results.FilterExtensions(e.Config.ExtensionSet())
	if err := results.SortByModTime(false); err != nil {
		return nil, err
	}
	return results.Head(n), nil
}
