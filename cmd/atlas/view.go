package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/abelbrown/atlas/internal/logging"
	"github.com/abelbrown/atlas/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func runView() {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	threshold := fs.Float64("threshold", math.NaN(), "Flag reports whose confidence is below this value (0-1)")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: atlas view [-threshold t] <analysis-id>")
		os.Exit(1)
	}
	id := fs.Arg(0)

	cfg := loadConfig()
	// The terminal belongs to the viewer, so logs go to a file.
	if err := logging.InitFile(cfg.Log.File, cfg.Log.Level); err != nil {
		fatalf("failed to open log file: %v", err)
	}
	defer logging.Close()

	c := newClient(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetch := func(id string) tea.Cmd {
		return func() tea.Msg {
			p, err := c.FetchReport(ctx, id)
			return ui.ReportLoaded{ID: id, Payload: p, Err: err}
		}
	}

	app := ui.NewApp(id, fetch)
	if !math.IsNaN(*threshold) {
		app = app.WithThreshold(*threshold)
	}

	logging.WithPrefix("view").Info("started", "analysis_id", id, "base_url", cfg.BaseURL)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatalf("viewer: %v", err)
	}
}
