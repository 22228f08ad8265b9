package main

import (
	"fmt"
	"os"

	"echomart/cmd/echomart/app"
	"echomart/cmd/echomart/dashboard"
	"echomart/cmd/echomart/ui"
	"echomart/internal/catalog"
	"echomart/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd launches the storefront TUI.
var rootCmd = &cobra.Command{
	Use:   "echomart",
	Short: "EchoMart - terminal storefront",
	Long: `EchoMart is a terminal storefront: it fetches a product catalog from a
remote feed, lets you search and filter it, toggle items into a cart, buy an
item, and talk to the Echo chat sidebar.

Run without arguments to start the interactive storefront.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the echomart version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("echomart %s\n", version)
	},
}

func runStorefront() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The TUI owns stdout, so verbose logs go to the configured file.
	logger = zap.NewNop()
	if verbose {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.DarkMode))
	feed := catalog.NewClient(cfg.FeedURL, cfg.FetchTimeout, logger.Named("feed"))

	dash := dashboard.New(dashboard.Config{
		Feed:   feed,
		Styles: styles,
		Logger: logger.Named("dashboard"),
	})

	logger.Info("starting storefront",
		zap.String("feed_url", cfg.FeedURL),
		zap.Bool("dark_mode", cfg.DarkMode))

	program := tea.NewProgram(app.New(dash, styles), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("storefront exited: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to the log file")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
