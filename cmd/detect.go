package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitie/pkg/detect"
)

var detectOpts struct {
	depth   int
	idsOnly bool
}

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Suggest templates for a project directory",
	Long: `Look for well-known project files (package.json, go.mod, Dockerfile, .idea
and so on) below dir and list the templates they suggest. Paths ignored by
the directory's .gitignore are not visited.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		matches, err := detect.Detect(state.catalog, dir, detect.Options{
			MaxDepth: detectOpts.depth,
			Logger:   state.logger,
		})
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			state.notifier.Warn(fmt.Sprintf("No known project files found in %s.", dir))
			return nil
		}

		out := cmd.OutOrStdout()
		if detectOpts.idsOnly {
			fmt.Fprintln(out, strings.Join(detect.IDs(matches), " "))
			return nil
		}
		for _, m := range matches {
			fmt.Fprintf(out, "  %s %s %s\n",
				idColor.Sprintf("%-14s", m.ID), m.Label, mutedColor.Sprintf("(found %s)", m.Marker))
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().IntVar(&detectOpts.depth, "depth", detect.DefaultMaxDepth, "How many directory levels to search")
	detectCmd.Flags().BoolVar(&detectOpts.idsOnly, "ids", false, "Print only the ids, space separated")

	RootCmd.AddCommand(detectCmd)
}
