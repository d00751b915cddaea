package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const defaultNewCount = 20

var findCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "Find media files by name",
	Long: `Find media files whose name matches a glob pattern.

A bare word matches anywhere in the filename, so 'mf find alien' is the
same as 'mf find "*alien*"'. Results are numbered; use the numbers with
'mf play', 'mf filepath', and 'mf imdb'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}

		results, normalized, err := a.env.Find(pattern)
		if err != nil {
			return err
		}
		return a.saveAndRender(normalized, results)
	},
}

var newCmd = &cobra.Command{
	Use:   "new [count]",
	Short: "List the most recently modified media files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		n := defaultNewCount
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q", args[0])
			}
			n = parsed
		}

		results, err := a.env.Newest(n)
		if err != nil {
			return err
		}
		return a.saveAndRender(newQueryDescription(n), results)
	},
}

// newQueryDescription is the pattern field shown and persisted for a
// recency query, which has no glob of its own.
func newQueryDescription(n int) string {
	return fmt.Sprintf("%d latest additions", n)
}

var filepathCmd = &cobra.Command{
	Use:   "filepath <index>",
	Short: "Print the full path of a result from the last search",
	Args:  cobra.ExactArgs(1),
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
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd, newCmd, filepathCmd)
}
