package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"

	"github.com/fenilsonani/mediafind/internal/player"
	"github.com/fenilsonani/mediafind/internal/ui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [index|next|list]",
	Short: "Play media files with VLC",
	Long: `Play media files from the last search.

  mf play 3      play result number 3
  mf play next   play the result after the last one played
  mf play list   send all results to VLC as a playlist
  mf play        play a random file from the whole library`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return a.playRandom()
		}

		switch args[0] {
		case "next":
			return a.playNext()
		case "list":
			return a.playList()
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid argument %q (want an index, 'next', or 'list')", args[0])
		}
		return a.playIndex(index)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func (a *app) playIndex(index int) error {
	path, err := a.search.ResultByIndex(index)
	if err != nil {
		return err
	}
	if err := player.Launch([]string{path}, a.cfg.FullscreenPlayback); err != nil {
		return err
	}
	if err := a.search.SaveLastPlayed(index); err != nil {
		ui.Warnf("could not record last played index: %v", err)
	}
	ui.Okf("Playing %s", filepath.Base(path))
	return a.renderLastSearch()
}

func (a *app) playNext() error {
	index, path, err := a.search.Next()
	if err != nil {
		return err
	}
	if err := player.Launch([]string{path}, a.cfg.FullscreenPlayback); err != nil {
		return err
	}
	if err := a.search.SaveLastPlayed(index); err != nil {
		ui.Warnf("could not record last played index: %v", err)
	}
	ui.Okf("Playing %d: %s", index, filepath.Base(path))
	return a.renderLastSearch()
}

func (a *app) playList() error {
	result, err := a.search.Load()
	if err != nil {
		return err
	}
	if len(result.Results) == 0 {
		return fmt.Errorf("the last search matched no files")
	}

	paths := make([]string, 0, len(result.Results))
	for _, p := range result.Results {
		paths = append(paths, filepath.FromSlash(p))
	}
	if err := player.Launch(paths, a.cfg.FullscreenPlayback); err != nil {
		return err
	}
	ui.Okf("Playing %d files as a playlist", len(paths))
	return nil
}

// playRandom picks any file from the library. It deliberately leaves
// the last-played marker alone so 'mf play next' keeps its place.
func (a *app) playRandom() error {
	results, err := a.env.All()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("the library is empty")
	}

	pick := results[rand.Intn(len(results))]
	if err := player.Launch([]string{pick.Path}, a.cfg.FullscreenPlayback); err != nil {
		return err
	}
	ui.Okf("Playing %s", pick.Name())
	return nil
}
