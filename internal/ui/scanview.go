package ui

import (
	"fmt"
	"strings"
	"time"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/mediafind/internal/progress"
)

const pollInterval = 100 * time.Millisecond

// ScanViewModel renders scan progress in two phases: an indeterminate
// spinner until the first file shows up, then a progress bar against
// the estimate seeded from the last known library size. It polls the
// tracker's atomic counter on a fixed tick instead of receiving a
// message per file.
type ScanViewModel struct {
	tracker   *progress.Tracker
	spinner   spinner.Model
	bar       progressbar.Model
	snapshot  progress.Snapshot
	cancelled bool
	done      bool
}

// NewScanViewModel creates the progress model for a scan in flight.
func NewScanViewModel(tracker *progress.Tracker) *ScanViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = BarStyle

	bar := progressbar.New(
		progressbar.WithDefaultGradient(),
		progressbar.WithoutPercentage(),
	)

	return &ScanViewModel{
		tracker: tracker,
		spinner: s,
		bar:     bar,
	}
}

type pollMsg struct{}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// Init starts the spinner and the poll loop.
func (m *ScanViewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, pollTick())
}

// Update handles messages.
func (m *ScanViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pollMsg:
		m.snapshot = m.tracker.Snapshot()
		if m.tracker.Finished() {
			m.done = true
			return m, tea.Quit
		}
		return m, pollTick()
	}

	return m, nil
}

// View renders the current phase.
func (m *ScanViewModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	snap := m.snapshot

	if snap.Found == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" Waiting for file system to respond... ")
		b.WriteString(DimStyle.Render(fmt.Sprintf("(%s)", snap.Elapsed.Round(time.Second))))
		b.WriteString("\n")
		return b.String()
	}

	if snap.Determinate {
		b.WriteString(m.bar.ViewAs(snap.Percent()))
		b.WriteString(fmt.Sprintf(" %d/%d files", snap.Found, snap.Total))
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(fmt.Sprintf(" Scanning... %d files", snap.Found))
	}
	b.WriteString(" ")
	b.WriteString(DimStyle.Render(fmt.Sprintf("(%s)", snap.Elapsed.Round(time.Second))))
	b.WriteString("\n")
	return b.String()
}

// RunScanProgress displays scan progress until the tracker finishes.
// Outside a terminal it just waits for completion so piped output stays
// clean.
func RunScanProgress(tracker *progress.Tracker) error {
	if !IsTerminal() {
		<-tracker.Done()
		return nil
	}

	model := NewScanViewModel(tracker)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*ScanViewModel); ok && m.cancelled {
		return fmt.Errorf("scan cancelled")
	}
	return nil
}
