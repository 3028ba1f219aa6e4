package cmd

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitie/pkg/engine"
	"gitie/pkg/export"
	"gitie/pkg/highlight"
	"gitie/pkg/tui"
)

var pickOpts struct {
	delivery deliveryOptions
	detect   bool
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose templates interactively",
	Long: `Open the interactive picker. Browse categories with tab, search with /,
toggle templates with space and press g to preview the result. From the
preview, y copies and s saves. Press q to finish; the document is then
written according to --output and --copy.`,
	RunE: runPick,
}

func init() {
	registerDeliveryFlags(pickCmd, &pickOpts.delivery)
	pickCmd.Flags().BoolVar(&pickOpts.detect, "detect", false, "Preselect templates detected in the working directory")

	RootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	if err := pickOpts.delivery.validate(); err != nil {
		return err
	}
	if !isTerminal(os.Stdin) {
		return errors.New("the picker needs an interactive terminal; use \"gitie generate\" instead")
	}

	preselected := engine.Reduce(engine.Selection{}, engine.SelectAction{IDs: state.cfg.Defaults})
	if pickOpts.detect {
		detected, err := detectIDs(".")
		if err != nil {
			return err
		}
		preselected = engine.Reduce(preselected, engine.SelectAction{IDs: detected})
	}

	savePath := export.DefaultFileName
	if t := pickOpts.delivery.target(); t != "-" {
		savePath = t
	}

	opts := tui.Options{
		Catalog:   state.catalog,
		Selection: preselected,
		Generator: state.generator,
		Clipboard: state.clipboard,
		SavePath:  savePath,
		Overwrite: pickOpts.delivery.force,
		Append:    pickOpts.delivery.append,
		Logger:    state.logger,
	}
	if !state.color {
		plain := highlight.PlainTheme()
		opts.Theme = &plain
	}

	var progOpts []tea.ProgramOption
	if !isTerminal(os.Stdout) {
		// stdout is redirected to receive the document; draw on stderr.
		progOpts = append(progOpts, tea.WithOutput(os.Stderr))
	}

	sel, err := tui.Run(cmd.Context(), opts, progOpts...)
	if errors.Is(err, tui.ErrAborted) {
		state.notifier.Warn("Aborted, nothing written.")
		return nil
	}
	if err != nil {
		return err
	}
	state.logger.Debug("Picker finished", zap.Strings("selection", sel))

	if len(engine.Labels(state.catalog, sel)) == 0 {
		state.notifier.Warn("Nothing selected, nothing written.")
		return nil
	}
	return deliver(cmd, state.generator.Generate(state.catalog, sel), pickOpts.delivery)
}
