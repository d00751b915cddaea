package main

import (
	"fmt"
	"os"

	"github.com/fenilsonani/mediafind/internal/stats"
	"github.com/fenilsonani/mediafind/internal/ui"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the library cache",
}

var cacheRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rescan the library and rewrite the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		results, err := a.library.Rebuild()
		if err != nil {
			return err
		}
		ui.Okf("Library cache rebuilt: %d files", len(results))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the library cache file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.library.Clear(); err != nil {
			return err
		}
		ui.Okf("Library cache cleared")
		return nil
	},
}

var cacheFileCmd = &cobra.Command{
	Use:   "file",
	Short: "Print the library cache file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		fmt.Println(a.library.Path)
		if info, err := os.Stat(a.library.Path); err == nil {
			ts := a.library.Timestamp()
			fmt.Printf("%d files, written %s, %d bytes\n",
				a.library.Size(), ts.Format("2006-01-02 15:04:05"), info.Size())
		} else {
			fmt.Println("(not built yet)")
		}
		return nil
	},
}

// histogramTopN caps categorical histograms at a screenful.
const histogramTopN = 15

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics as histograms",
	Long: `Render histograms of the library: files per extension, files per
video resolution (parsed from filenames), and a logarithmic file-size
distribution.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		results, err := a.env.All()
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("the library is empty")
		}

		r, err := renderer()
		if err != nil {
			return err
		}

		exts := make([]string, 0, len(results))
		var resolutions []string
		var sizes []int64
		for _, entry := range results {
			exts = append(exts, entry.Ext())
			if res := stats.ParseResolution(entry.Name()); res != "" {
				resolutions = append(resolutions, res)
			}
			if info, err := os.Stat(entry.Path); err == nil {
				sizes = append(sizes, info.Size())
			}
		}

		if err := r.RenderHistogram("Extensions", stats.TopN(stats.CountStrings(exts), histogramTopN)); err != nil {
			return err
		}
		if err := r.RenderHistogram("Resolutions", stats.TopN(stats.CountStrings(resolutions), histogramTopN)); err != nil {
			return err
		}
		return r.RenderHistogram("File sizes", stats.LogBins(sizes, 3))
	},
}

func init() {
	cacheCmd.AddCommand(cacheRebuildCmd, cacheClearCmd, cacheFileCmd, cacheStatsCmd)
	rootCmd.AddCommand(cacheCmd)
}
