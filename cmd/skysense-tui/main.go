package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/i474232898/skysense/internal/app"
	"github.com/i474232898/skysense/internal/config"
	"github.com/i474232898/skysense/internal/logging"
	"github.com/i474232898/skysense/internal/scheduler"
	"github.com/i474232898/skysense/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the renderer; log only to a file.
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		if logger, err = logging.New(cfg.LogLevel, cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	service, slot := app.Build(cfg, logger)
	updates := slot.Subscribe()

	sched := scheduler.New(cfg.DefaultCity, cfg.RefreshInterval, service, logger)
	if err := sched.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start scheduler: %v\n", err)
		os.Exit(1)
	}
	defer sched.Stop()

	model := ui.NewModel(service, updates, 3*cfg.HTTPTimeout, cfg.DefaultCity != "")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
