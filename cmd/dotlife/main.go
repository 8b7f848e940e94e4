package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/renkel/dotlife/internal/config"
	"github.com/renkel/dotlife/internal/tui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dotlife",
		Short: "braille game of life for the terminal",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Path())
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.DefaultConfig()
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	logger.Info("session start",
		"density", cfg.Density, "tick_ms", cfg.TickMs, "seed", cfg.Seed)

	pop, err := tui.Run(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("failed to run visualizer: %w", err)
	}
	logger.Info("session end", "generations", pop.Generations())

	fmt.Print(pop.Summary())
	return nil
}

// newLogger builds the session logger. A TUI owns the terminal, so log
// lines go to a file or nowhere, never to stdout or stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, nil)), func() { f.Close() }, nil
}
