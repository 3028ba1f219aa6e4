package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"gitie/pkg/catalog"
	"gitie/pkg/config"
	"gitie/pkg/engine"
	"gitie/pkg/export"
	"gitie/pkg/logging"
	"gitie/pkg/version"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	logger    *zap.Logger
	cfg       *config.Config
	catalog   *catalog.Catalog
	generator engine.Generator
	notifier  export.Notifier
	clipboard export.Clipboard
	color     bool
}

var state = &app{
	logger:    zap.NewNop(),
	clipboard: export.SystemClipboard{},
}

var rootOpts struct {
	debug       bool
	configPath  string
	catalogPath string
	noColor     bool
}

// RootCmd is the base command when called without any subcommands. On its
// own it starts the interactive picker.
var RootCmd = &cobra.Command{
	Use:   "gitie",
	Short: "Gitie builds .gitignore files from curated templates",
	Long: `Gitie assembles a .gitignore file from a curated catalog of templates for
languages, frameworks, editors, build tools, databases, operating systems and
infrastructure tools. Pick templates interactively, or name them on the
command line with "gitie generate".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPick,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.BoolVar(&rootOpts.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&rootOpts.configPath, "config", "", "Path to a .gitie.yaml file (default: nearest one above the working directory)")
	pf.StringVar(&rootOpts.catalogPath, "catalog", "", "Path to a catalog YAML file replacing the built-in templates")
	pf.BoolVar(&rootOpts.noColor, "no-color", false, "Disable colored output")

	registerDeliveryFlags(RootCmd, &pickOpts.delivery)
	RootCmd.Flags().BoolVar(&pickOpts.detect, "detect", false, "Preselect templates detected in the working directory")
}

// Execute runs the root command with logger as the base logger.
func Execute(logger *zap.Logger) error {
	if logger != nil {
		state.logger = logger
	}
	return RootCmd.Execute()
}

// setup loads configuration and the catalog before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if rootOpts.debug {
		logger, err := logging.Setup(true, "gitie", version.Version)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		state.logger = logger
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Load(rootOpts.configPath, wd)
	if err != nil {
		return err
	}
	state.cfg = cfg
	state.logger.Debug("Configuration loaded",
		zap.String("path", cfg.Path),
		zap.String("product", cfg.Product),
		zap.Strings("defaults", cfg.Defaults))

	catalogPath := cfg.Catalog
	if rootOpts.catalogPath != "" {
		catalogPath = rootOpts.catalogPath
	}
	c, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	state.catalog = c
	state.generator = engine.Generator{Product: cfg.Product}

	state.color = !rootOpts.noColor && cfg.ColorEnabled(isTerminal(os.Stdout))
	export.ConfigureColor(state.color)
	state.notifier = export.ConsoleNotifier{Out: cmd.ErrOrStderr()}
	return nil
}

// loadCatalog returns the built-in catalog, or the one at path when set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	state.logger.Debug("Catalog loaded", zap.String("path", path), zap.Int("items", c.Len()))
	return c, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
