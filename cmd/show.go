package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitie/pkg/highlight"
)

var showOpts struct {
	raw         bool
	lineNumbers bool
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the content of one template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, ok := state.catalog.FindItem(args[0])
		if !ok {
			return fmt.Errorf("unknown template id %q; run \"gitie list\" to see the catalog", args[0])
		}

		out := cmd.OutOrStdout()
		if showOpts.raw {
			_, err := fmt.Fprintln(out, it.Content)
			return err
		}

		theme := highlight.PlainTheme()
		if state.color {
			theme = highlight.DefaultTheme()
		}
		owner, _ := state.catalog.OwningCategory(it.ID)
		fmt.Fprintln(out, theme.Comment.Render(fmt.Sprintf("# %s (%s)", it.Label, owner)))
		fmt.Fprintln(out, highlight.Render(it.Content, highlight.Options{
			Theme:           theme,
			ShowLineNumbers: showOpts.lineNumbers,
		}))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showOpts.raw, "raw", false, "Print the template without highlighting")
	showCmd.Flags().BoolVarP(&showOpts.lineNumbers, "line-numbers", "n", false, "Number the lines")

	RootCmd.AddCommand(showCmd)
}
