package main

import (
	"fmt"
	"strconv"

	"github.com/fenilsonani/mediafind/internal/imdb"
	"github.com/fenilsonani/mediafind/internal/ui"
	"github.com/spf13/cobra"
)

var imdbCmd = &cobra.Command{
	Use:   "imdb <index>",
	Short: "Look up a result from the last search on IMDb",
	Long: `Guess the movie title from the indexed file's name, look it up on
IMDb, print the page URL, and open it in the browser.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}

		path, err := a.search.ResultByIndex(index)
		if err != nil {
			return err
		}

		title := imdb.ParseTitle(path)
		if title == "" {
			return fmt.Errorf("could not extract a title from %s", path)
		}

		titles, err := imdb.NewClient().Search(title)
		if err != nil {
			return err
		}

		best := titles[0]
		if best.Year > 0 {
			fmt.Printf("%s (%d)\n", best.Name, best.Year)
		} else {
			fmt.Println(best.Name)
		}
		fmt.Println(best.URL())

		if err := imdb.OpenBrowser(best.URL()); err != nil {
			ui.Warnf("%v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imdbCmd)
}
