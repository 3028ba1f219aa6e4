package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitie/pkg/detect"
	"gitie/pkg/engine"
)

var generateOpts struct {
	delivery deliveryOptions
	detect   bool
	strict   bool
}

var generateCmd = &cobra.Command{
	Use:     "generate [ids...]",
	Aliases: []string{"gen"},
	Short:   "Generate a .gitignore from template ids",
	Long: `Generate a .gitignore document from the named templates, in the order
given. Without ids the defaults from the config file are used. Unknown ids
are skipped with a warning unless --strict is set.`,
	Example: `  gitie generate node react vscode macos
  gitie generate go docker -o .gitignore
  gitie generate --detect --append -o .gitignore`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 && !generateOpts.detect {
			ids = state.cfg.Defaults
		}
		sel := engine.Reduce(engine.Selection{}, engine.SelectAction{IDs: ids})

		if generateOpts.detect {
			detected, err := detectIDs(".")
			if err != nil {
				return err
			}
			sel = engine.Reduce(sel, engine.SelectAction{IDs: detected})
		}

		if unknown := engine.Unknown(state.catalog, sel); len(unknown) > 0 {
			if generateOpts.strict {
				return fmt.Errorf("unknown template ids: %s", strings.Join(unknown, ", "))
			}
			state.notifier.Warn(fmt.Sprintf("Skipping unknown template ids: %s", strings.Join(unknown, ", ")))
		}
		if len(engine.Labels(state.catalog, sel)) == 0 {
			state.notifier.Warn("No templates selected; the document only has the header.")
		}

		state.logger.Debug("Generating document", zap.Strings("selection", sel))
		return deliver(cmd, state.generator.Generate(state.catalog, sel), generateOpts.delivery)
	},
}

// detectIDs returns the ids suggested for dir.
func detectIDs(dir string) ([]string, error) {
	matches, err := detect.Detect(state.catalog, dir, detect.Options{Logger: state.logger})
	if err != nil {
		return nil, err
	}
	return detect.IDs(matches), nil
}

func init() {
	registerDeliveryFlags(generateCmd, &generateOpts.delivery)
	generateCmd.Flags().BoolVar(&generateOpts.detect, "detect", false, "Add templates detected in the working directory")
	generateCmd.Flags().BoolVar(&generateOpts.strict, "strict", false, "Fail on unknown ids instead of skipping them")

	RootCmd.AddCommand(generateCmd)
}
