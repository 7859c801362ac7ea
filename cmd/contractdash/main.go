package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contractdash/cmd/contractdash/ui"
	"contractdash/internal/auth"
	"contractdash/internal/config"
	"contractdash/internal/contracts"
	"contractdash/internal/logging"
	"contractdash/internal/viewmodel"
)

var (
	// Global flags
	configPath    string
	verbose       bool
	contractsPath string
	detailsPath   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "contractdash",
	Short: "contractdash - terminal contract-management dashboard",
	Long: `contractdash is a terminal dashboard for browsing a contract portfolio.

It serves a mock contract collection: log in (password "test123"), search
and filter the list, open a contract to inspect clauses, AI insights and
supporting evidence, and simulate uploads. No server, no real data.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// validateCmd checks the mock collections without starting the TUI.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the mock contract collections",
	Long: `Loads both mock collections and reports structural problems:
duplicate ids, detail records without a summary, and confidence or
relevance scores outside [0,1].`,
	RunE: runValidate,
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the contractdash version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", cfg.Name, cfg.Version)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&contractsPath, "contracts", "", "contracts JSON path (default: embedded mock data)")
	rootCmd.PersistentFlags().StringVar(&detailsPath, "details", "", "contract details JSON path (default: embedded mock data)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if contractsPath != "" {
		cfg.Data.ContractsPath = contractsPath
	}
	if detailsPath != "" {
		cfg.Data.DetailsPath = detailsPath
	}
	return cfg, nil
}

// runDashboard builds the dependency graph and starts the TUI.
func runDashboard() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo := contracts.NewFileRepository(cfg.Data.ContractsPath, cfg.Data.DetailsPath, logger)
	marker := auth.NewMarkerStore(cfg.Session.MarkerPath)
	gate := auth.NewGate(marker, logger)

	delay, err := cfg.UploadDelay()
	if err != nil {
		return err
	}
	rate := cfg.Upload.SuccessRate
	outcome := func(viewmodel.UploadItem) bool { return rand.Float64() < rate }
	uploader := viewmodel.NewUploader(delay, outcome, logger)
	defer uploader.Close()

	model := newAppModel(cfg, repo, gate, uploader, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := repo.Watch(ctx, func() {
		program.Send(ui.DataChangedMsg{})
	}); err != nil {
		// Live reload is a convenience; the dashboard works without it.
		logger.Warn("mock data watch unavailable", zap.Error(err))
	}

	logger.Info("starting dashboard",
		zap.String("version", cfg.Version),
		zap.Int("page_size", cfg.Dashboard.PageSize),
		zap.Duration("upload_delay", delay))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// runValidate loads both collections concurrently and reports problems.
func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo := contracts.NewFileRepository(cfg.Data.ContractsPath, cfg.Data.DetailsPath, logger)
	ctx := context.Background()

	listCount, detailCount, err := repo.Preload(ctx)
	if err != nil {
		return fmt.Errorf("load collections: %w", err)
	}
	fmt.Printf("contracts: %d records, details: %d records\n", listCount, detailCount)

	problems, err := contracts.Validate(ctx, repo)
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		fmt.Println("mock data OK")
		return nil
	}
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	return fmt.Errorf("%d problem(s) found", len(problems))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
