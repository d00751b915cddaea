package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/fenilsonani/mediafind/internal/progress"
)

func TestScanViewPhases(t *testing.T) {
	tracker := progress.NewTracker(100)
	m := NewScanViewModel(tracker)

	t.Run("waiting before first file", func(t *testing.T) {
		m.snapshot = progress.Snapshot{Found: 0}
		if !strings.Contains(m.View(), "Waiting for file system to respond") {
			t.Errorf("unexpected view: %q", m.View())
		}
	})

	t.Run("bar once files arrive", func(t *testing.T) {
		m.snapshot = progress.Snapshot{Found: 40, Total: 100, Determinate: true, Elapsed: 2 * time.Second}
		view := m.View()
		if !strings.Contains(view, "40/100 files") {
			t.Errorf("view missing file counts: %q", view)
		}
		if strings.Contains(view, "Waiting") {
			t.Errorf("still in waiting phase: %q", view)
		}
	})

	t.Run("spinner with counts when indeterminate", func(t *testing.T) {
		m.snapshot = progress.Snapshot{Found: 40}
		view := m.View()
		if !strings.Contains(view, "40 files") {
			t.Errorf("view missing count: %q", view)
		}
	})

	t.Run("empty after done", func(t *testing.T) {
		m.done = true
		if m.View() != "" {
			t.Errorf("done view should be empty, got %q", m.View())
		}
	})
}

func TestScanViewQuitsWhenFinished(t *testing.T) {
	tracker := progress.NewTracker(0)
	m := NewScanViewModel(tracker)
	tracker.Finish()

	_, cmd := m.Update(pollMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}
