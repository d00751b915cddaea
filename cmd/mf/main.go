package main

import (
	"fmt"
	"os"

	"github.com/fenilsonani/mediafind/internal/cache"
	"github.com/fenilsonani/mediafind/internal/config"
	"github.com/fenilsonani/mediafind/internal/progress"
	"github.com/fenilsonani/mediafind/internal/query"
	"github.com/fenilsonani/mediafind/internal/report"
	"github.com/fenilsonani/mediafind/internal/scanner"
	"github.com/fenilsonani/mediafind/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	outputFlag string
)

var rootCmd = &cobra.Command{
	Use:          "mf",
	Short:        "Find and play media files",
	Long:         "mf indexes media files under your configured directories and lets you search, play, and inspect them from the terminal.",
	Version:      version,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mf %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}

// app bundles the loaded configuration with the caches and query layer.
// Commands construct it lazily so 'mf config' and 'mf version' work
// even when parts of the environment are broken.
type app struct {
	cfg     *config.Config
	library *cache.Library
	search  *cache.SearchCache
	env     *query.Env
}

func newApp() (*app, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.EnsureConfigExists(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	libraryPath, err := cache.LibraryFile()
	if err != nil {
		return nil, err
	}
	searchPath, err := cache.SearchFile()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		search: &cache.SearchCache{Path: searchPath},
	}
	a.library = &cache.Library{
		Path: libraryPath,
		TTL:  cfg.LibraryCacheInterval.Duration,
		Scan: func() (scanner.Results, error) { return a.scan(true) },
	}
	a.env = &query.Env{
		Config:  cfg,
		Library: a.library,
		Scan:    a.scan,
	}
	return a, nil
}

// scan runs the parallel scanner over the configured roots with a live
// progress display. The estimate is seeded from the last known library
// size so the bar has a total to aim at.
func (a *app) scan(withModTime bool) (scanner.Results, error) {
	valid, missing := a.cfg.ValidSearchPaths()
	for _, m := range missing {
		ui.Warnf("search path does not exist: %s", m)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("none of the configured search paths exist")
	}

	tracker := progress.NewTracker(a.library.Size())
	coord := &scanner.Coordinator{
		Roots:       valid,
		WithModTime: withModTime,
		PreferFD:    a.cfg.PreferFD,
		Tracker:     tracker,
		Warn: func(path string, err error) {
			ui.Warnf("%s: %v", path, err)
		},
	}

	var results scanner.Results
	go func() {
		results = coord.Scan()
		tracker.Finish()
	}()

	if err := ui.RunScanProgress(tracker); err != nil {
		return nil, err
	}
	return results, nil
}

// renderer builds the output renderer for the selected --output format.
func renderer() (*report.Renderer, error) {
	format, err := report.ParseFormat(outputFlag)
	if err != nil {
		return nil, err
	}
	return &report.Renderer{Out: os.Stdout, Format: format}, nil
}

// renderLastSearch re-renders the cached result panel, highlighting the
// last played entry.
func (a *app) renderLastSearch() error {
	result, err := a.search.Load()
	if err != nil {
		return err
	}
	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Render(&report.ResultSet{
		Pattern:    result.Pattern,
		Entries:    scanner.FromPaths(result.Results),
		LastPlayed: result.LastPlayedIndex,
	})
}

// saveAndRender persists a query outcome to the search cache and prints
// it. An empty result set is rendered but not saved, so the previous
// search's play-by-index mappings survive a dud query. Cache write
// failures degrade to a warning so results still show.
func (a *app) saveAndRender(pattern string, results scanner.Results) error {
	if len(results) > 0 {
		if err := a.search.Save(pattern, results.Paths()); err != nil {
			ui.Warnf("could not save search results: %v", err)
		}
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Render(&report.ResultSet{Pattern: pattern, Entries: results})
}
