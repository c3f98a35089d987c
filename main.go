package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selectdrop/internal/catalog"
	"selectdrop/internal/config"
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/log"
	"selectdrop/internal/logic"
	"selectdrop/internal/ui"
)

var version = "dev"

type options struct {
	configPath  string
	catalogPath string
	multiple    bool
	noSearch    bool
	label       string
	placeholder string
	closePolicy string
	watch       bool
	debug       bool
	saveConfig  bool
	logPath     string
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "selectdrop",
		Short: "Pick options from a searchable dropdown",
		Long: `selectdrop shows a select dropdown over an option catalog and prints
the values you picked, one per line, when you quit.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/selectdrop/config.toml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "catalog file in TOML or YAML (default is the built-in catalog)")
	flags.BoolVarP(&opts.multiple, "multiple", "m", false, "start in multi select mode")
	flags.BoolVar(&opts.noSearch, "no-search", false, "hide the search box")
	flags.StringVar(&opts.label, "label", "", "label shown next to the trigger")
	flags.StringVar(&opts.placeholder, "placeholder", "", "text shown when nothing is selected")
	flags.StringVar(&opts.closePolicy, "close-policy", "", "when a pick closes the panel: always or single-only")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "reload the catalog file when it changes")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.saveConfig, "save-config", false, "write the effective settings back to the config file on exit")
	flags.StringVar(&opts.logPath, "log-file", "selectdrop.log", "log file")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options) error {
	// Set up logging
	logFile, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetDebug(opts.debug)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	if opts.configPath != "" {
		configSvc = config.NewConfigServiceAt(opts.configPath, bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Errorf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: %v, using default settings\n", err)
		cfg = config.DefaultConfig()
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	catalogOptions, source, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	// The host owns the selection
	store := logic.NewMemorySelectionStore(nil)

	uiModel := ui.NewModel(bus, cfg, store, catalogOptions, source)
	defer uiModel.Close()

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	if opts.watch && cfg.CatalogFile != "" {
		watcher, err := catalog.NewWatcher(cfg.CatalogFile, catalog.DefaultDebounce)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		defer watcher.Close()
		go forwardCatalogUpdates(ctx, p, watcher, cfg.CatalogFile)
	}

	// Run the UI
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if opts.saveConfig {
		cfg.Select = uiModel.Controller().Settings()
		if err := configSvc.Save(cfg); err != nil {
			log.Errorf("Error saving config: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			log.LogWithFields(log.F("path", configSvc.Path())).Info("Config saved")
		}
	}

	for _, value := range domain.Values(uiModel.Selection()) {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

// applyFlags overrides config values with the flags the user actually set
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogFile = opts.catalogPath
	}
	if flags.Changed("multiple") {
		cfg.Select.Multiple = opts.multiple
	}
	if flags.Changed("no-search") {
		cfg.Select.WithSearch = !opts.noSearch
	}
	if flags.Changed("label") {
		cfg.Select.Label = opts.label
	}
	if flags.Changed("placeholder") {
		cfg.Select.Placeholder = opts.placeholder
	}
	if flags.Changed("close-policy") {
		policy, err := config.ParseClosePolicy(opts.closePolicy)
		if err != nil {
			return err
		}
		cfg.Select.ClosePolicy = policy
	}
	return nil
}

func loadCatalog(path string) ([]domain.Option, string, error) {
	if path == "" {
		return catalog.Builtin(), "builtin", nil
	}
	loaded, err := catalog.Load(path)
	if err != nil {
		return nil, "", err
	}
	return loaded, path, nil
}

// forwardCatalogUpdates feeds watcher results into the program until ctx ends
// or the watcher closes
func forwardCatalogUpdates(ctx context.Context, p *tea.Program, w *catalog.Watcher, source string) {
	for {
		select {
		case <-ctx.Done():
			return
		case loaded, ok := <-w.Updates():
			if !ok {
				return
			}
			p.Send(ui.CatalogUpdatedMsg{Options: loaded, Source: source})
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			p.Send(ui.CatalogErrorMsg{Err: err})
		}
	}
}
