// Package equity estimates showdown win and tie frequencies for known hole
// cards by Monte Carlo completion of the board.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-ranker/internal/randutil"
	"github.com/lox/holdem-ranker/poker"
)

// BoardSize is the number of community cards on a complete board.
const BoardSize = 5

var (
	// ErrDuplicateCard is returned when a card appears twice across the hands and board.
	ErrDuplicateCard = poker.ErrDuplicateCard

	// ErrHoleCards is returned when a hand does not hold exactly two cards.
	ErrHoleCards = errors.New("hand must contain exactly 2 cards")

	// ErrBoardTooLarge is returned when more than five community cards are given.
	ErrBoardTooLarge = errors.New("board cannot have more than 5 cards")

	// ErrHandCount is returned unless exactly two hands are given.
	ErrHandCount = errors.New("equity is heads-up: need exactly 2 hands")
)

// Request describes one equity calculation.
type Request struct {
	Hands      [][]poker.Card
	Board      []poker.Card
	Iterations int
	Workers    int
	Seed       int64
}

// PlayerResult is the tally for one hand.
type PlayerResult struct {
	Hand  []poker.Card
	Wins  int
	Ties  int
	Total int

	// Possibilities counts how often the hand finished in each category.
	Possibilities [poker.NumCategories]int
}

// WinPct returns the share of outright wins as a percentage.
func (p PlayerResult) WinPct() float64 { return pct(p.Wins, p.Total) }

// TiePct returns the share of split pots as a percentage.
func (p PlayerResult) TiePct() float64 { return pct(p.Ties, p.Total) }

// CategoryPct returns how often the hand made the category, as a percentage.
func (p PlayerResult) CategoryPct(c poker.HandCategory) float64 {
	return pct(p.Possibilities[c], p.Total)
}

// Result is the outcome of a calculation.
type Result struct {
	Players    []PlayerResult
	Iterations int
	Elapsed    time.Duration
}

// Calculator runs equity simulations.
type Calculator struct {
	clock  quartz.Clock
	logger *log.Logger
}

// NewCalculator creates a calculator. A nil clock uses the real clock and a
// nil logger discards output.
func NewCalculator(clock quartz.Clock, logger *log.Logger) *Calculator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Calculator{clock: clock, logger: logger.WithPrefix("equity")}
}

// Validate checks that hands and board are well formed and share no cards.
func Validate(hands [][]poker.Card, board []poker.Card) error {
	if len(hands) != 2 {
		return fmt.Errorf("%w, got %d", ErrHandCount, len(hands))
	}
	if len(board) > BoardSize {
		return fmt.Errorf("%w, got %d", ErrBoardTooLarge, len(board))
	}

	var seen poker.CardSet
	if err := seen.AddDistinct(board...); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	for i, hand := range hands {
		if len(hand) != 2 {
			return fmt.Errorf("hand %d: %w, got %d", i+1, ErrHoleCards, len(hand))
		}
		if err := seen.AddDistinct(hand...); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}
	return nil
}

// Calculate runs req.Iterations deals split across req.Workers goroutines.
// Each worker draws from its own stream derived from req.Seed, so the same
// seed and worker count reproduce the same result.
func (c *Calculator) Calculate(ctx context.Context, req Request) (Result, error) {
	if err := Validate(req.Hands, req.Board); err != nil {
		return Result{}, err
	}
	if req.Iterations <= 0 {
		return Result{}, fmt.Errorf("iterations must be positive, got %d", req.Iterations)
	}
	workers := min(max(req.Workers, 1), req.Iterations)

	start := c.clock.Now()

	used := poker.NewCardSet(req.Board...)
	for _, hand := range req.Hands {
		for _, card := range hand {
			used.Add(card)
		}
	}
	available := make([]poker.Card, 0, poker.DeckSize)
	for _, card := range poker.NewFullDeck() {
		if !used.Contains(card) {
			available = append(available, card)
		}
	}

	tallies := make([][]PlayerResult, workers)
	per, rem := req.Iterations/workers, req.Iterations%workers

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := per
		if w < rem {
			n++
		}
		g.Go(func() error {
			tally, err := runWorker(ctx, req.Hands, req.Board, available, n, randutil.Derive(req.Seed, w))
			tallies[w] = tally
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Players:    make([]PlayerResult, len(req.Hands)),
		Iterations: req.Iterations,
	}
	for i, hand := range req.Hands {
		res.Players[i].Hand = hand
		res.Players[i].Total = req.Iterations
	}
	for _, tally := range tallies {
		for i, t := range tally {
			res.Players[i].Wins += t.Wins
			res.Players[i].Ties += t.Ties
			for cat, n := range t.Possibilities {
				res.Players[i].Possibilities[cat] += n
			}
		}
	}
	res.Elapsed = c.clock.Since(start)

	c.logger.Debug("Calculated equity",
		"hands", len(req.Hands),
		"board", poker.FormatCards(req.Board),
		"iterations", req.Iterations,
		"workers", workers,
		"elapsed", res.Elapsed)
	return res, nil
}

const cancelCheckInterval = 1024

func runWorker(ctx context.Context, hands [][]poker.Card, board, available []poker.Card, n int, rng *rand.Rand) ([]PlayerResult, error) {
	tally := make([]PlayerResult, len(hands))
	deck := make([]poker.Card, len(available))
	copy(deck, available)

	fullBoard := make([]poker.Card, BoardSize)
	copy(fullBoard, board)
	need := BoardSize - len(board)

	seven := make([]poker.Card, 2+BoardSize)
	results := make([]poker.Result, len(hands))

	for iter := range n {
		if iter%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
		}

		// Partial Fisher-Yates: the last need cards of deck complete the board.
		for k := range need {
			last := len(deck) - 1 - k
			j := rng.IntN(last + 1)
			deck[j], deck[last] = deck[last], deck[j]
			fullBoard[len(board)+k] = deck[last]
		}

		best := 0
		for i, hand := range hands {
			copy(seven[:2], hand)
			copy(seven[2:], fullBoard)
			res, err := poker.Evaluate(seven)
			if err != nil {
				return tally, err
			}
			results[i] = res
			tally[i].Possibilities[res.Category]++
			if poker.Compare(res, results[best]) > 0 {
				best = i
			}
		}

		winners := 0
		for i := range results {
			if poker.Compare(results[i], results[best]) == 0 {
				winners++
			}
		}
		for i := range results {
			if poker.Compare(results[i], results[best]) != 0 {
				continue
			}
			if winners == 1 {
				tally[i].Wins++
			} else {
				tally[i].Ties++
			}
		}
	}
	return tally, nil
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
