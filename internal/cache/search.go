package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoSearch indicates no usable previous search exists.
var ErrNoSearch = errors.New("no previous search; run 'mf find <pattern>' or 'mf new' first")

// SearchResult is the persisted outcome of the most recent query.
// Results keeps the exact display order, so indexes shown to the user
// stay valid across invocations until the next query overwrites them.
type SearchResult struct {
	Pattern         string    `json:"pattern"`
	Timestamp       time.Time `json:"timestamp"`
	Results         []string  `json:"results"`
	LastPlayedIndex *int      `json:"last_played_index,omitempty"`
}

// SearchCache stores the last query's results for play-by-index.
type SearchCache struct {
	Path string
	Now  func() time.Time
}

func (s *SearchCache) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Save records a fresh query, resetting the last-played marker.
func (s *SearchCache) Save(pattern string, results []string) error {
	return s.write(&SearchResult{
		Pattern:   pattern,
		Timestamp: s.now(),
		Results:   results,
	})
}

func (s *SearchCache) write(result *SearchResult) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".search-*.json")
	if err != nil {
		return fmt.Errorf("writing search cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing search cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing search cache: %w", err)
	}
	return os.Rename(tmp.Name(), s.Path)
}

// Load returns the last search. Missing or corrupted files both yield
// ErrNoSearch; a corrupted cache is no more useful than none.
func (s *SearchCache) Load() (*SearchResult, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, ErrNoSearch
	}

	var result SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, ErrNoSearch
	}
	return &result, nil
}

// ResultByIndex resolves a 1-based display index to a path, verifying
// the file still exists on disk.
func (s *SearchCache) ResultByIndex(index int) (string, error) {
	result, err := s.Load()
	if err != nil {
		return "", err
	}
	return result.at(index)
}

func (r *SearchResult) at(index int) (string, error) {
	if len(r.Results) == 0 {
		return "", fmt.Errorf("the last search matched no files")
	}
	if index < 1 || index > len(r.Results) {
		return "", fmt.Errorf("index %d out of range (valid: 1-%d)", index, len(r.Results))
	}

	path := filepath.FromSlash(r.Results[index-1])
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file no longer exists: %s", path)
	}
	return path, nil
}

// Next returns the index and path of the entry after the last played
// one. With no last-played marker it starts at the first entry.
func (s *SearchCache) Next() (int, string, error) {
	result, err := s.Load()
	if err != nil {
		return 0, "", err
	}

	index := 1
	if result.LastPlayedIndex != nil {
		index = *result.LastPlayedIndex + 1
	}
	if index > len(result.Results) {
		return 0, "", fmt.Errorf("reached the end of the last search (%d results)", len(result.Results))
	}

	path, err := result.at(index)
	if err != nil {
		return 0, "", err
	}
	return index, path, nil
}

// SaveLastPlayed updates the last-played marker in place.
func (s *SearchCache) SaveLastPlayed(index int) error {
	result, err := s.Load()
	if err != nil {
		return err
	}
	if index < 1 || index > len(result.Results) {
		return fmt.Errorf("index %d out of range (valid: 1-%d)", index, len(result.Results))
	}
	result.LastPlayedIndex = &index
	return s.write(result)
}

// Clear deletes the search cache file. A missing file is not an error.
func (s *SearchCache) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
