package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitie/pkg/export"
)

// deliveryOptions says where a generated document goes.
type deliveryOptions struct {
	output string
	copy   bool
	force  bool
	append bool
}

func registerDeliveryFlags(cmd *cobra.Command, opts *deliveryOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", `Write to this file, "-" for stdout (default from config, else stdout)`)
	f.BoolVar(&opts.copy, "copy", false, "Copy the document to the clipboard")
	f.BoolVar(&opts.force, "force", false, "Overwrite the output file if it exists")
	f.BoolVar(&opts.append, "append", false, "Append to the output file if it exists")
}

// target is the resolved output: the flag, then the config file.
func (o deliveryOptions) target() string {
	if o.output != "" {
		return o.output
	}
	if state.cfg != nil && state.cfg.Output != "" {
		return state.cfg.Output
	}
	return "-"
}

func (o deliveryOptions) validate() error {
	if o.force && o.append {
		return errors.New("--force and --append cannot be used together")
	}
	return nil
}

// deliver copies, prints or saves doc. With --copy and no explicit output the
// document only goes to the clipboard.
func deliver(cmd *cobra.Command, doc string, opts deliveryOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	if opts.copy {
		if err := state.clipboard.WriteAll(doc); err != nil {
			return err
		}
		state.notifier.Success(export.CopiedMessage)
		if opts.output == "" {
			return nil
		}
	}

	target := opts.target()
	if target == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}

	err := export.SaveFile(target, doc, export.SaveOptions{
		Overwrite: opts.force,
		Append:    opts.append,
		Logger:    state.logger,
	})
	if errors.Is(err, export.ErrExists) {
		return fmt.Errorf("%w; use --force to overwrite or --append to extend it", err)
	}
	if err != nil {
		return err
	}
	state.logger.Debug("Document written", zap.String("path", target))
	state.notifier.Success(export.SavedMessage(target))
	return nil
}
