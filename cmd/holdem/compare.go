package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/lox/holdem-ranker/internal/equity"
	"github.com/lox/holdem-ranker/poker"
)

// CompareCmd decides a heads-up showdown on a known board.
type CompareCmd struct {
	Hands []string `arg:"" help:"Two hands of hole cards, e.g. 'AsAd' '7h 2c'"`
	Board string   `short:"b" required:"" help:"Community cards, 3 to 5 (e.g. 'Td7s8h')"`
}

func (c *CompareCmd) Run(g *Globals) error {
	e, err := stdEnv(g)
	if err != nil {
		return err
	}
	return c.run(e)
}

func (c *CompareCmd) run(e *env) error {
	if len(c.Hands) != 2 {
		return fmt.Errorf("compare takes exactly 2 hands, got %d", len(c.Hands))
	}
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	if len(board) < 3 {
		return fmt.Errorf("board needs at least 3 cards, got %d", len(board))
	}
	if err := equity.Validate(hands, board); err != nil {
		return err
	}

	outcome, a, b, err := poker.Winner(slices.Concat(hands[0], board), slices.Concat(hands[1], board))
	if err != nil {
		return err
	}
	e.logger.Debug("Compared", "outcome", outcome, "one", a.Score, "two", b.Score)

	names := [2]string{poker.FormatCards(hands[0]), poker.FormatCards(hands[1])}

	e.printf("%s\n", e.render.Header.Render("board"))
	e.printf("%s\n\n", e.render.Cards(board))

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", e.render.Header.Render("hand"), e.render.Header.Render("result"))
	for i, res := range []poker.Result{a, b} {
		fmt.Fprintf(w, "%s\t%s\n", e.render.Cards(hands[i]), e.render.Result(res))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	e.printf("\n%s\n", e.render.Outcome(outcome, names))
	return nil
}
