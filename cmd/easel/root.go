package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/easel/internal/catalog"
	"github.com/mmcdole/easel/internal/config"
	"github.com/mmcdole/easel/internal/log"
	"github.com/mmcdole/easel/internal/metrics"
	"github.com/mmcdole/easel/internal/service"
	"github.com/mmcdole/easel/internal/tui"
)

var errNoTerminal = errors.New("easel needs an interactive terminal")

type rootOptions struct {
	configFile  string
	page        int
	logLevel    string
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "easel",
		Short: "Browse an artwork catalog and build a selection across pages",
		Long: `Easel pages through a remote artwork catalog in the terminal.

Rows can be checked one at a time, a page at a time, or as the first N
rows across pages. The selection lasts for the session.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "path to config file (default ~/.config/easel/config.yaml)")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page to open first")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	return cmd
}

func run(ctx context.Context, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNoTerminal
	}
	if opts.page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", opts.page)
	}

	// Load configuration
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting easel", "version", Version, "catalog", cfg.Catalog.BaseURL)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reg := prometheus.NewRegistry()
	catalogMetrics := metrics.NewCatalogMetrics(reg)
	if cfg.Metrics.Listen != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Listen, reg, logger); err != nil {
				logger.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	// Create services
	client := catalog.NewClient(cfg.Catalog, logger, catalogMetrics)
	catalogSvc := service.NewCatalogService(client, logger, catalogMetrics, cfg.Catalog.PageSize, cfg.Selection.MaxBulk)

	// Create TUI model
	model := tui.NewModel(catalogSvc, tui.Options{
		StartPage: opts.page,
		Debounce:  cfg.Selection.Debounce,
		Logger:    logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// applyOverrides lets command-line flags win over file and environment values
func applyOverrides(cfg *config.Config, opts *rootOptions) {
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Listen = opts.metricsAddr
	}
}
