package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-ranker/internal/randutil"
	"github.com/lox/holdem-ranker/internal/tui"
)

// PlayCmd runs the interactive table.
type PlayCmd struct {
	Seed    *int64   `help:"Random seed for reproducible deals"`
	Names   []string `help:"Player names" default:"Player,Opponent"`
	LogFile string   `help:"Write logs to this file while the table is open" default:"holdem.log" type:"path"`
}

func (c *PlayCmd) Run(g *Globals) error {
	// The terminal belongs to the table, so logs go to a file.
	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	e, err := g.env(os.Stdout, logFile)
	if err != nil {
		return err
	}

	var names [2]string
	copy(names[:], c.Names)
	seed := e.seed(c.Seed)
	e.logger.Info("Starting table", "seed", seed)

	model := tui.New(tui.Options{
		Names:    names,
		Rand:     randutil.New(seed),
		Renderer: e.render,
		Logger:   e.logger,
		IDs:      e.ids,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run table: %w", err)
	}

	tally := model.Tally()
	e.logger.Info("Table closed", names[0], tally[0], names[1], tally[1], "ties", tally[2])
	return nil
}
