// Package showdown plays a single heads-up Texas Hold'em hand without
// betting: hole cards are dealt, the board is revealed street by street and
// both players' seven cards are ranked at the showdown.
package showdown

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-ranker/internal/handid"
	"github.com/lox/holdem-ranker/poker"
)

// Stage is the street a hand has reached.
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	Showdown
)

var stageNames = [...]string{"Pre-Flop", "Flop", "Turn", "River", "Showdown"}

// String returns the street name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}

// BoardSize returns the number of community cards visible at the stage.
func (s Stage) BoardSize() int {
	switch s {
	case PreFlop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return 5
	}
}

var (
	// ErrHandComplete is returned when advancing a hand already at the showdown.
	ErrHandComplete = errors.New("hand already at showdown")

	// ErrNotAtShowdown is returned when asking for a result before the river is out.
	ErrNotAtShowdown = errors.New("hand not at showdown")
)

// HoleCards is the number of private cards dealt to each player.
const HoleCards = 2

// Player is one seat in the hand.
type Player struct {
	Name string
	Hole []poker.Card
}

// Options configures a new hand.
type Options struct {
	Names  [2]string
	Logger *log.Logger
	IDs    *handid.Generator
}

// Hand is one heads-up hand in progress.
type Hand struct {
	ID      string
	Players [2]Player
	Board   []poker.Card

	stage  Stage
	deck   *poker.Deck
	logger *log.Logger
}

// Result is the verdict at the showdown.
type Result struct {
	Outcome poker.Outcome
	Hands   [2]poker.Result
}

// Deal starts a hand by dealing two hole cards to each player from deck.
func Deal(deck *poker.Deck, opts Options) (*Hand, error) {
	if opts.Names[0] == "" {
		opts.Names[0] = "Player"
	}
	if opts.Names[1] == "" {
		opts.Names[1] = "Opponent"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.IDs == nil {
		opts.IDs = handid.NewGenerator(nil, nil)
	}

	h := &Hand{
		ID:    opts.IDs.Generate(),
		deck:  deck,
		Board: make([]poker.Card, 0, Showdown.BoardSize()),
	}
	h.logger = opts.Logger.With("hand", h.ID)

	for i := range h.Players {
		hole, err := deck.Draw(HoleCards)
		if err != nil {
			return nil, fmt.Errorf("dealing to %s: %w", opts.Names[i], err)
		}
		h.Players[i] = Player{Name: opts.Names[i], Hole: hole}
	}

	h.logger.Debug("Dealt hole cards",
		h.Players[0].Name, poker.FormatCards(h.Players[0].Hole),
		h.Players[1].Name, poker.FormatCards(h.Players[1].Hole))
	return h, nil
}

// Stage returns the street the hand has reached.
func (h *Hand) Stage() Stage {
	return h.stage
}

// Advance moves to the next street, revealing community cards as needed.
func (h *Hand) Advance() error {
	if h.stage == Showdown {
		return ErrHandComplete
	}

	next := h.stage + 1
	need := next.BoardSize() - len(h.Board)
	if need > 0 {
		cards, err := h.deck.Draw(need)
		if err != nil {
			return fmt.Errorf("dealing the %s: %w", next, err)
		}
		h.Board = append(h.Board, cards...)
	}
	h.stage = next

	h.logger.Debug("Advanced", "stage", h.stage, "board", poker.FormatCards(h.Board))
	return nil
}

// Cards returns the player's hole cards combined with the visible board.
func (h *Hand) Cards(player int) []poker.Card {
	cards := make([]poker.Card, 0, HoleCards+len(h.Board))
	cards = append(cards, h.Players[player].Hole...)
	return append(cards, h.Board...)
}

// Names returns both player names.
func (h *Hand) Names() [2]string {
	return [2]string{h.Players[0].Name, h.Players[1].Name}
}

// Result ranks both players' seven cards. It is only available at the showdown.
func (h *Hand) Result() (Result, error) {
	if h.stage != Showdown {
		return Result{}, fmt.Errorf("%w: at %s", ErrNotAtShowdown, h.stage)
	}

	outcome, a, b, err := poker.Winner(h.Cards(0), h.Cards(1))
	if err != nil {
		return Result{}, err
	}
	res := Result{Outcome: outcome, Hands: [2]poker.Result{a, b}}

	h.logger.Info("Showdown",
		"board", poker.FormatCards(h.Board),
		h.Players[0].Name, a.String(),
		h.Players[1].Name, b.String(),
		"outcome", outcome)
	return res, nil
}

// Play deals a hand and runs it straight to the showdown. observe, when not
// nil, is called after the deal and after every street.
func Play(deck *poker.Deck, opts Options, observe func(*Hand)) (*Hand, Result, error) {
	h, err := Deal(deck, opts)
	if err != nil {
		return nil, Result{}, err
	}
	if observe != nil {
		observe(h)
	}
	for h.Stage() != Showdown {
		if err := h.Advance(); err != nil {
			return h, Result{}, err
		}
		if observe != nil {
			observe(h)
		}
	}
	res, err := h.Result()
	return h, res, err
}
