package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitie/pkg/engine"
	"gitie/pkg/ignore"
)

var checkOpts struct {
	with []string
}

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Show which template ignores a path",
	Long: `Compile the selected templates in order and report, for each path, whether
it would be ignored and by which template line. The last matching line
decides, as in git. Append "/" to a path to test it as a directory.`,
	Example: `  gitie check --with node,macos node_modules/ .DS_Store src/index.js`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := checkOpts.with
		if len(ids) == 0 {
			ids = state.cfg.Defaults
		}
		if len(ids) == 0 {
			return errors.New("no templates to check against; pass --with or set defaults in .gitie.yaml")
		}
		sel := engine.Reduce(engine.Selection{}, engine.SelectAction{IDs: ids})
		for _, id := range engine.Unknown(state.catalog, sel) {
			state.notifier.Warn(fmt.Sprintf("Skipping unknown template id %q", id))
		}

		m := ignore.New(state.logger)
		for _, id := range sel {
			it, ok := state.catalog.FindItem(id)
			if !ok {
				continue
			}
			if err := m.CompileText(it.Label, it.Content); err != nil {
				state.logger.Warn("Template has invalid lines", zap.String("id", id), zap.Error(err))
			}
		}

		out := cmd.OutOrStdout()
		for _, path := range args {
			ignored, p := m.MatchWithPattern(path)
			switch {
			case p == nil:
				fmt.Fprintf(out, "%s: %s\n", path, mutedColor.Sprint("not ignored"))
			case ignored:
				fmt.Fprintf(out, "%s: %s by %s line %d %s\n",
					path, headingColor.Sprint("ignored"), p.Source, p.LineNo, idColor.Sprintf("%q", p.Line))
			default:
				fmt.Fprintf(out, "%s: %s by %s line %d %s\n",
					path, mutedColor.Sprint("re-included"), p.Source, p.LineNo, idColor.Sprintf("%q", p.Line))
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSliceVarP(&checkOpts.with, "with", "w", nil, "Template ids to check against (default from config)")

	RootCmd.AddCommand(checkCmd)
}
