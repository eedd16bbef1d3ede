package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jirehhuang/pipecat-assistant/internal/app"
	"github.com/jirehhuang/pipecat-assistant/internal/client"
	"github.com/jirehhuang/pipecat-assistant/internal/config"
	"github.com/jirehhuang/pipecat-assistant/internal/icons"
	"github.com/jirehhuang/pipecat-assistant/internal/logging"
	"github.com/jirehhuang/pipecat-assistant/internal/state"
)

func run() error {
	// Optional .env next to the binary; real env still wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logCloser, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logCloser.Close()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("opening state db: %w", err)
	}
	defer stateMgr.Close()

	conn := client.New(cfg.ServerURL, client.Options{
		ReconnectAttempts: cfg.ReconnectAttempts(),
		ReconnectDelay:    cfg.ReconnectDelay(),
	})
	if err := conn.Connect(); err != nil {
		return fmt.Errorf("connecting to %s: %w", cfg.ServerURL, err)
	}
	defer conn.Close()

	slog.Info("connected", "url", cfg.ServerURL)

	m := app.New(cfg, conn, stateMgr)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
