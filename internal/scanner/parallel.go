package scanner

import (
	"fmt"
	"os"
	"sync"

	"github.com/fenilsonani/mediafind/internal/progress"
)

// Coordinator fans a scan out across all configured roots, one
// goroutine per root, and merges the results. When PreferFD is set and
// modification times aren't required, each root first tries the
// external fd binary and falls back to the native walk on its own if fd
// is unavailable or fails there.
type Coordinator struct {
	Roots       []string
	WithModTime bool
	PreferFD    bool
	Warn        WarnFunc
	Tracker     *progress.Tracker
}

func (c *Coordinator) warn(path string, err error) {
	if c.Warn != nil {
		c.Warn(path, err)
	}
}

// Scan runs the parallel scan and returns the merged results in
// arbitrary order. Roots that are missing or unreadable are skipped
// with a warning; the scan always proceeds with whatever remains, so
// one dead network share never costs the results of the healthy roots.
func (c *Coordinator) Scan() Results {
	fdPath := ""
	if c.PreferFD && !c.WithModTime {
		path, err := FindFD()
		if err != nil {
			c.warn("fd", err)
		} else {
			fdPath = path
		}
	}

	found := make(chan FileEntry, 256)

	var wg sync.WaitGroup
	for _, root := range c.Roots {
		if _, err := os.Stat(root); err != nil {
			c.warn(root, fmt.Errorf("skipping search path: %w", err))
			continue
		}

		wg.Add(1)
		go func(root string) {
			defer wg.Done()
			c.scanRoot(root, fdPath, found)
		}(root)
	}

	go func() {
		wg.Wait()
		close(found)
	}()

	var results Results
	for entry := range found {
		results = append(results, entry)
		if c.Tracker != nil {
			c.Tracker.Inc()
		}
	}
	return results
}

func (c *Coordinator) scanRoot(root, fdPath string, found chan<- FileEntry) {
	if fdPath != "" {
		// Buffer fd output so a mid-stream failure doesn't leak partial
		// results before the native fallback rescans the root.
		var buffered []FileEntry
		err := ScanWithFD(fdPath, root, func(entry FileEntry) {
			buffered = append(buffered, entry)
		})
		if err == nil {
			for _, entry := range buffered {
				found <- entry
			}
			return
		}
		c.warn(root, fmt.Errorf("fd scan failed, retrying with native walk: %w", err))
	}

	walker := &Walker{
		WithModTime: c.WithModTime,
		OnFile:      func(entry FileEntry) { found <- entry },
		Warn:        c.Warn,
	}
	if err := walker.Walk(root); err != nil {
		c.warn(root, fmt.Errorf("skipping unreadable search path: %w", err))
	}
}
