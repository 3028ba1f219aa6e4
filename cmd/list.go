package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitie/pkg/catalog"
)

var listOpts struct {
	category string
	search   string
}

var (
	headingColor = color.New(color.FgGreen, color.Bold)
	idColor      = color.New(color.FgCyan)
	mutedColor   = color.New(color.FgHiBlack)
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available templates",
	Long: `List the templates of the catalog grouped by category. --category shows a
single category; --search lists every template whose label contains the
query, ignoring case.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if q := strings.TrimSpace(listOpts.search); q != "" {
			items := state.catalog.SearchFilter(q)
			if len(items) == 0 {
				fmt.Fprintln(out, "No matches found for your search")
				return nil
			}
			for _, it := range items {
				owner, _ := state.catalog.OwningCategory(it.ID)
				printItem(out, it, owner)
			}
			return nil
		}

		if listOpts.category != "" {
			items := state.catalog.CategoryItems(listOpts.category)
			if len(items) == 0 {
				return fmt.Errorf("unknown category %q (available: %s)",
					listOpts.category, strings.Join(state.catalog.CategoryNames(), ", "))
			}
			printCategory(out, catalog.Category{Name: listOpts.category, Items: items})
			return nil
		}

		for i, cat := range state.catalog.Categories() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printCategory(out, cat)
		}
		return nil
	},
}

func printCategory(out io.Writer, cat catalog.Category) {
	headingColor.Fprintln(out, cat.Name)
	for _, it := range cat.Items {
		printItem(out, it, "")
	}
}

func printItem(out io.Writer, it catalog.Item, note string) {
	fmt.Fprintf(out, "  %s %s", idColor.Sprintf("%-14s", it.ID), it.Label)
	if note != "" {
		fmt.Fprintf(out, " %s", mutedColor.Sprintf("(%s)", note))
	}
	fmt.Fprintln(out)
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.category, "category", "c", "", "Only list this category")
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "", "Only list templates whose label contains this text")

	RootCmd.AddCommand(listCmd)
}
