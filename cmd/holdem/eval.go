package main

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-ranker/poker"
)

// EvalCmd classifies a single card set.
type EvalCmd struct {
	Cards []string `arg:"" help:"5 to 7 cards, e.g. 'As Ks Qs Js Ts' or AsKsQsJsTs"`
}

func (c *EvalCmd) Run(g *Globals) error {
	e, err := stdEnv(g)
	if err != nil {
		return err
	}
	return c.run(e)
}

func (c *EvalCmd) run(e *env) error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) > 7 {
		return fmt.Errorf("at most 7 cards can be evaluated, got %d", len(cards))
	}
	var seen poker.CardSet
	if err := seen.AddDistinct(cards...); err != nil {
		return err
	}

	res, err := poker.EvaluateBestHand(cards)
	if err != nil {
		return err
	}
	e.logger.Debug("Evaluated", "cards", poker.FormatCards(cards), "category", res.Category, "score", res.Score)

	e.printf("%s\n", e.render.Cards(cards))
	e.printf("%s\n", e.render.Result(res))
	return nil
}
