package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme colors
var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#A78BFA")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Danger    = lipgloss.Color("#EF4444")
	Info      = lipgloss.Color("#3B82F6")
	Muted     = lipgloss.Color("#6B7280")
	Text      = lipgloss.Color("#F3F4F6")
	TextDim   = lipgloss.Color("#9CA3AF")
	Border    = lipgloss.Color("#4B5563")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	IndexStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	FileNameStyle = lipgloss.NewStyle().
			Foreground(Text)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(Info)

	LastPlayedStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true)

	BarStyle = lipgloss.NewStyle().
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)
)

// IsTerminal reports whether stdout is an interactive terminal.
// Non-interactive runs skip the animated progress display.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Okf prints a success line to stdout.
func Okf(format string, args ...any) {
	fmt.Println(SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// Warnf prints a warning line to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, WarningStyle.Render("!")+" "+fmt.Sprintf(format, args...))
}

// Errorf prints an error line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗")+" "+fmt.Sprintf(format, args...))
}
