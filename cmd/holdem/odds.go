package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-ranker/internal/equity"
	"github.com/lox/holdem-ranker/poker"
)

// OddsCmd estimates each hand's chance of winning.
type OddsCmd struct {
	Hands         []string `arg:"" help:"Two player hands in format 'AcKd' 'QhJs'" required:"true"`
	Board         string   `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show detailed hand type probabilities"`
	Iterations    int      `short:"i" help:"Number of Monte Carlo iterations (default from config)"`
	Workers       int      `short:"w" help:"Parallel workers (default from config)"`
	Seed          *int64   `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run(g *Globals) error {
	e, err := stdEnv(g)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, e)
}

func (c *OddsCmd) run(ctx context.Context, e *env) error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}

	iterations := c.Iterations
	if iterations == 0 {
		iterations = e.cfg.Odds.Iterations
	}
	workers := c.Workers
	if workers == 0 {
		workers = e.cfg.Odds.Workers
	}
	seed := e.seed(c.Seed)
	e.logger.Debug("Running simulation", "iterations", iterations, "workers", workers, "seed", seed)

	calc := equity.NewCalculator(nil, e.logger)
	res, err := calc.Calculate(ctx, equity.Request{
		Hands:      hands,
		Board:      board,
		Iterations: iterations,
		Workers:    workers,
		Seed:       seed,
	})
	if err != nil {
		return err
	}

	return c.display(e, res, board)
}

func (c *OddsCmd) display(e *env, res equity.Result, board []poker.Card) error {
	if len(board) > 0 {
		e.printf("%s\n", e.render.Header.Render("board"))
		e.printf("%s\n\n", e.render.Cards(board))
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		e.render.Header.Render("hand"),
		e.render.Header.Render("win"),
		e.render.Header.Render("tie"))
	for _, p := range res.Players {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			e.render.Cards(p.Hand),
			e.render.Win.Render(fmt.Sprintf("%.1f%%", p.WinPct())),
			e.render.Tie.Render(fmt.Sprintf("%.1f%%", p.TiePct())))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Possibilities {
		e.printf("\n")
		if err := c.displayPossibilities(e, res); err != nil {
			return err
		}
	}

	e.printf("\n%s\n", e.render.Info.Render(fmt.Sprintf("%d iterations in %v",
		res.Iterations, res.Elapsed.Truncate(time.Millisecond))))
	return nil
}

func (c *OddsCmd) displayPossibilities(e *env, res equity.Result) error {
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", e.render.Category.Render("hand"))
	for _, p := range res.Players {
		fmt.Fprintf(w, "\t%s", e.render.Cards(p.Hand))
	}
	fmt.Fprintf(w, "\n")

	for _, cat := range poker.Categories() {
		seen := false
		for _, p := range res.Players {
			if p.Possibilities[cat] > 0 {
				seen = true
			}
		}
		if !seen {
			continue
		}

		fmt.Fprintf(w, "%s", e.render.Category.Render(cat.String()))
		for _, p := range res.Players {
			fmt.Fprintf(w, "\t%s", e.render.Pct(p.CategoryPct(cat)))
		}
		fmt.Fprintf(w, "\n")
	}

	return w.Flush()
}
