package progress

import (
	"sync"
	"sync/atomic"
	"time"
)

// Tracker provides thread-safe progress tracking for a scan in flight.
// Scan workers call Inc for every discovered file; a display loop polls
// Snapshot at its own interval. The estimate is seeded from the last
// known library size and revised upward when actual progress exceeds it.
type Tracker struct {
	found    atomic.Int64
	estimate atomic.Int64
	start    time.Time
	done     chan struct{}
	once     sync.Once
}

// NewTracker creates a tracker. An estimate of 0 means no prior library
// size is known and the display stays indeterminate.
func NewTracker(estimate int64) *Tracker {
	t := &Tracker{
		start: time.Now(),
		done:  make(chan struct{}),
	}
	if estimate > 0 {
		t.estimate.Store(estimate)
	}
	return t
}

// Inc records one discovered file.
func (t *Tracker) Inc() {
	t.found.Add(1)
}

// Found returns the number of files discovered so far.
func (t *Tracker) Found() int64 {
	return t.found.Load()
}

// Finish marks the scan as complete. Safe to call more than once.
func (t *Tracker) Finish() {
	t.once.Do(func() { close(t.done) })
}

// Done returns a channel that is closed when the scan completes.
func (t *Tracker) Done() <-chan struct{} {
	return t.done
}

// Finished reports whether Finish has been called.
func (t *Tracker) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Snapshot is a point-in-time view of scan progress.
type Snapshot struct {
	Found       int64
	Total       int64
	Determinate bool
	Elapsed     time.Duration
}

// Snapshot returns the current progress. When the discovered count
// overtakes the estimate, the total is bumped to 110% of the count so
// the display never caps out before the scan is done.
func (t *Tracker) Snapshot() Snapshot {
	found := t.found.Load()
	total := t.estimate.Load()

	if total > 0 && found > total {
		total = found + found/10
		t.estimate.Store(total)
	}

	return Snapshot{
		Found:       found,
		Total:       total,
		Determinate: total > 0,
		Elapsed:     time.Since(t.start),
	}
}

// Percent returns completion in [0, 1]. Indeterminate snapshots report 0.
func (s Snapshot) Percent() float64 {
	if !s.Determinate || s.Total == 0 {
		return 0
	}
	p := float64(s.Found) / float64(s.Total)
	if p > 1 {
		p = 1
	}
	return p
}
