package progress

import (
	"sync"
	"testing"
)

func TestTrackerCounts(t *testing.T) {
	tr := NewTracker(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Inc()
			}
		}()
	}
	wg.Wait()

	if got := tr.Found(); got != 800 {
		t.Errorf("Found() = %d, want 800", got)
	}
}

func TestSnapshotDeterminate(t *testing.T) {
	tr := NewTracker(100)
	for i := 0; i < 50; i++ {
		tr.Inc()
	}

	snap := tr.Snapshot()
	if !snap.Determinate {
		t.Fatal("expected determinate snapshot")
	}
	if snap.Percent() != 0.5 {
		t.Errorf("Percent() = %f, want 0.5", snap.Percent())
	}
}

func TestSnapshotIndeterminate(t *testing.T) {
	tr := NewTracker(0)
	tr.Inc()

	snap := tr.Snapshot()
	if snap.Determinate {
		t.Error("expected indeterminate snapshot with no estimate")
	}
	if snap.Percent() != 0 {
		t.Errorf("Percent() = %f, want 0", snap.Percent())
	}
}

func TestEstimateRevisedUpward(t *testing.T) {
	tr := NewTracker(10)
	for i := 0; i < 20; i++ {
		tr.Inc()
	}

	snap := tr.Snapshot()
	if snap.Total != 22 {
		t.Errorf("revised total = %d, want 22 (110%% of found)", snap.Total)
	}
	if snap.Percent() > 1 {
		t.Errorf("Percent() = %f, must never exceed 1", snap.Percent())
	}
}

func TestFinish(t *testing.T) {
	tr := NewTracker(0)
	if tr.Finished() {
		t.Fatal("new tracker already finished")
	}

	tr.Finish()
	tr.Finish() // idempotent

	if !tr.Finished() {
		t.Error("tracker not finished after Finish")
	}
	select {
	case <-tr.Done():
	default:
		t.Error("Done() channel not closed")
	}
}
