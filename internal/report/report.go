package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fenilsonani/mediafind/internal/scanner"
	"github.com/fenilsonani/mediafind/internal/stats"
	"github.com/fenilsonani/mediafind/internal/ui"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat validates an --output flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", s)
}

// ResultSet is a rendered query outcome. Indexes are 1-based and match
// what the search cache stores, so the numbers shown here are the ones
// 'mf play' accepts.
type ResultSet struct {
	Pattern    string
	Entries    scanner.Results
	LastPlayed *int
}

// Renderer writes result sets and histograms in the selected format.
type Renderer struct {
	Out    io.Writer
	Format OutputFormat
}

// Render writes the result set.
func (r *Renderer) Render(set *ResultSet) error {
	switch r.Format {
	case FormatJSON:
		return r.renderMachine(set, func(v any) error {
			enc := json.NewEncoder(r.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		})
	case FormatYAML:
		return r.renderMachine(set, func(v any) error {
			enc := yaml.NewEncoder(r.Out)
			defer enc.Close()
			return enc.Encode(v)
		})
	default:
		return r.renderText(set)
	}
}

type machineEntry struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
}

type machineResult struct {
	Pattern string         `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Count   int            `json:"count" yaml:"count"`
	Results []machineEntry `json:"results" yaml:"results"`
}

func (r *Renderer) renderMachine(set *ResultSet, encode func(any) error) error {
	out := machineResult{
		Pattern: set.Pattern,
		Count:   len(set.Entries),
		Results: make([]machineEntry, 0, len(set.Entries)),
	}
	for i, entry := range set.Entries {
		out.Results = append(out.Results, machineEntry{
			Index: i + 1,
			Name:  entry.Name(),
			Path:  entry.Dir(),
		})
	}
	return encode(out)
}

func (r *Renderer) renderText(set *ResultSet) error {
	if len(set.Entries) == 0 {
		if set.Pattern != "" {
			fmt.Fprintf(r.Out, "%s: no files\n", set.Pattern)
		} else {
			fmt.Fprintln(r.Out, "No files found")
		}
		return nil
	}

	width := len(fmt.Sprintf("%d", len(set.Entries)))
	rows := make([]string, 0, len(set.Entries))
	for i, entry := range set.Entries {
		index := i + 1
		line := fmt.Sprintf("%s  %s  %s",
			ui.IndexStyle.Render(fmt.Sprintf("%*d", width, index)),
			ui.FileNameStyle.Render(entry.Name()),
			ui.FilePathStyle.Render(entry.Dir()),
		)
		if set.LastPlayed != nil && *set.LastPlayed == index {
			line = fmt.Sprintf("%s  %s  %s",
				ui.IndexStyle.Render(fmt.Sprintf("%*d", width, index)),
				ui.LastPlayedStyle.Render(entry.Name()),
				ui.FilePathStyle.Render(entry.Dir()),
			)
		}
		rows = append(rows, line)
	}

	// The pattern doubles as the query description ("*alien*" for a
	// find, "20 latest additions" for a recency query).
	title := fmt.Sprintf("%d files", len(set.Entries))
	if set.Pattern != "" {
		title = fmt.Sprintf("%s (%d files)", set.Pattern, len(set.Entries))
	}

	panel := lipgloss.JoinVertical(lipgloss.Left,
		ui.TitleStyle.Render(title),
		ui.PanelStyle.Render(strings.Join(rows, "\n")),
	)
	fmt.Fprintln(r.Out, panel)
	return nil
}

const histogramBarWidth = 40

// RenderHistogram writes bins as a unicode bar chart panel. Bars are
// scaled to the largest bin; labels are right-aligned.
func (r *Renderer) RenderHistogram(title string, bins []stats.Bin) error {
	if len(bins) == 0 {
		fmt.Fprintf(r.Out, "%s: no data\n", title)
		return nil
	}

	max := 0
	total := 0
	labelWidth := 0
	for _, bin := range bins {
		if bin.Count > max {
			max = bin.Count
		}
		total += bin.Count
		if len(bin.Label) > labelWidth {
			labelWidth = len(bin.Label)
		}
	}

	rows := make([]string, 0, len(bins))
	for _, bin := range bins {
		barLen := 0
		if max > 0 {
			barLen = bin.Count * histogramBarWidth / max
		}
		if bin.Count > 0 && barLen == 0 {
			barLen = 1
		}
		percent := 0.0
		if total > 0 {
			percent = 100 * float64(bin.Count) / float64(total)
		}
		rows = append(rows, fmt.Sprintf("%*s %s %d (%.1f%%)",
			labelWidth, bin.Label,
			ui.BarStyle.Render(strings.Repeat("▆", barLen)),
			bin.Count, percent,
		))
	}

	panel := lipgloss.JoinVertical(lipgloss.Left,
		ui.TitleStyle.Render(title),
		ui.PanelStyle.Render(strings.Join(rows, "\n")),
	)
	fmt.Fprintln(r.Out, panel)
	return nil
}
