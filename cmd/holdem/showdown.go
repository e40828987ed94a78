package main

import (
	"fmt"
	"time"

	"github.com/lox/holdem-ranker/internal/phh"
	"github.com/lox/holdem-ranker/internal/randutil"
	"github.com/lox/holdem-ranker/internal/showdown"
	"github.com/lox/holdem-ranker/poker"
)

// ShowdownCmd deals one heads-up hand and prints every street.
type ShowdownCmd struct {
	Seed    *int64   `help:"Random seed for a reproducible deal"`
	Names   []string `help:"Player names" default:"Player,Opponent"`
	History string   `help:"Write the hand to this file in PHH format" type:"path"`
}

func (c *ShowdownCmd) Run(g *Globals) error {
	e, err := stdEnv(g)
	if err != nil {
		return err
	}
	return c.run(e)
}

func (c *ShowdownCmd) run(e *env) error {
	var names [2]string
	copy(names[:], c.Names)

	seed := e.seed(c.Seed)
	e.logger.Debug("Dealing", "seed", seed)

	deck := poker.NewDeck(randutil.New(seed))
	h, res, err := showdown.Play(deck, showdown.Options{
		Names:  names,
		Logger: e.logger,
		IDs:    e.ids,
	}, func(h *showdown.Hand) { c.printStage(e, h) })
	if err != nil {
		return err
	}

	names = h.Names()
	e.printf("\n")
	for i, r := range res.Hands {
		e.printf("%-10s %s\n", names[i], e.render.Result(r))
	}
	e.printf("\n%s\n", e.render.Outcome(res.Outcome, names))

	if c.History != "" {
		if err := phh.WriteFile(c.History, phh.FromShowdown(h, res, time.Now())); err != nil {
			return fmt.Errorf("writing hand history: %w", err)
		}
		e.logger.Info("Wrote hand history", "path", c.History, "hand", h.ID)
	}
	return nil
}

func (c *ShowdownCmd) printStage(e *env, h *showdown.Hand) {
	stage := e.render.Header.Render(fmt.Sprintf("*** %s ***", h.Stage()))
	switch h.Stage() {
	case showdown.PreFlop:
		e.printf("%s %s\n", e.render.Info.Render("hand "+h.ID), stage)
		for _, p := range h.Players {
			e.printf("%-10s %s  %s\n", p.Name, e.render.Cards(p.Hole),
				e.render.Info.Render(string(poker.CategorizeHoleCards(p.Hole[0], p.Hole[1]))))
		}
	case showdown.Showdown:
		e.printf("%s\n", stage)
	default:
		e.printf("%s %s\n", stage, e.render.Cards(h.Board))
	}
}
