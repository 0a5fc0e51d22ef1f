package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vaprisk/internal/app"
	"github.com/abhisek/vaprisk/internal/config"
	"github.com/abhisek/vaprisk/internal/logging"
)

// runApp loads configuration, sets up logging, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	debug := cfg.Debug
	if flag, _ := cmd.Flags().GetBool("debug"); flag {
		debug = true
	}
	logFile := cfg.LogFile
	if flag, _ := cmd.Flags().GetString("log-file"); flag != "" {
		logFile = flag
	}

	// The TUI owns the terminal, so diagnostics go to a file (or nowhere).
	logger, closeLog, err := logging.NewFile(logFile, debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Log file unavailable:", err)
		fmt.Fprintln(os.Stderr, "Continuing without diagnostics.")
	} else {
		defer closeLog()
	}

	if cfg.NoColor {
		// lipgloss honors the NO_COLOR convention.
		os.Setenv("NO_COLOR", "1")
	}

	logger.Info().Str("engine_default", cfg.Engine).Msg("starting assessment session")

	return app.Run(app.Options{Logger: logger, DefaultEngine: cfg.Engine})
}
