package poker

import (
	"cmp"
	"fmt"
)

// MinCards is the smallest card set Evaluate accepts.
const MinCards = 5

// kickerSlots is the longest kicker list any category produces (flush and high card).
const kickerSlots = 5

// categorySpan is NumRanks^kickerSlots: one more than the largest kicker
// encoding, so every score in a category sits above every score in the
// category below it.
const categorySpan = NumRanks * NumRanks * NumRanks * NumRanks * NumRanks

// Score is a single comparable hand strength. Higher values are stronger and
// equal values tie.
type Score uint32

// Category returns the hand category encoded in the score.
func (s Score) Category() HandCategory {
	return HandCategory(s / categorySpan)
}

// String returns the category name.
func (s Score) String() string {
	return s.Category().String()
}

// newScore encodes kickers as base-13 digits, most significant first, padded
// on the right so shorter lists compare as if followed by Twos.
func newScore(category HandCategory, kickers []Rank) Score {
	var detail uint32
	for i := range kickerSlots {
		detail *= NumRanks
		if i < len(kickers) {
			detail += uint32(kickers[i])
		}
	}
	return Score(uint32(category)*categorySpan + detail)
}

// Result is the classification of a card set.
type Result struct {
	Category HandCategory
	Kickers  []Rank
	Score    Score
}

// Evaluate classifies the best five-card hand available in cards. It needs at
// least five cards and never modifies the slice it is given. Duplicate cards
// are not rejected; keeping the deck unique is the dealer's job.
func Evaluate(cards []Card) (Result, error) {
	if len(cards) < MinCards {
		return Result{}, fmt.Errorf("%w: need %d, got %d", ErrInsufficientCards, MinCards, len(cards))
	}
	if err := checkCards(cards); err != nil {
		return Result{}, err
	}

	h := newHand(cards)
	for _, d := range detectors {
		if kickers, ok := d.detect(h); ok {
			return Result{
				Category: d.category,
				Kickers:  kickers,
				Score:    newScore(d.category, kickers),
			}, nil
		}
	}
	// detectHighCard always matches.
	panic("poker: no detector matched")
}

func checkCards(cards []Card) error {
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, c.Rank, c.Suit)
		}
	}
	return nil
}

// EvaluateBestHand is the boundary operation offered to game collaborators:
// given 5-7 cards it returns the best achievable classification.
func EvaluateBestHand(cards []Card) (Result, error) {
	return Evaluate(cards)
}

// Compare returns 1 if a is stronger, -1 if b is stronger and 0 for a tie.
// Categories decide first, then kickers element by element. A missing
// kicker counts as a Two, matching the Score encoding.
func Compare(a, b Result) int {
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	for i := range kickerSlots {
		if c := cmp.Compare(kickerAt(a.Kickers, i), kickerAt(b.Kickers, i)); c != 0 {
			return c
		}
	}
	return 0
}

func kickerAt(kickers []Rank, i int) Rank {
	if i < len(kickers) {
		return kickers[i]
	}
	return Two
}

// Beats reports whether r is strictly stronger than other.
func (r Result) Beats(other Result) bool {
	return Compare(r, other) > 0
}

// Ties reports whether r and other are of identical strength.
func (r Result) Ties(other Result) bool {
	return Compare(r, other) == 0
}

// String describes the hand, e.g. "Full House, Deuces full of Fives".
func (r Result) String() string {
	k := r.Kickers
	if len(k) == 0 {
		return r.Category.String()
	}
	switch r.Category {
	case RoyalFlush:
		return r.Category.String()
	case StraightFlush, Straight, Flush, HighCard:
		return fmt.Sprintf("%s, %s high", r.Category, k[0].Name())
	case FourOfAKind, ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s", r.Category, k[0].Plural())
	case FullHouse:
		if len(k) < 2 {
			break
		}
		return fmt.Sprintf("%s, %s full of %s", r.Category, k[0].Plural(), k[1].Plural())
	case TwoPair:
		if len(k) < 2 {
			break
		}
		return fmt.Sprintf("%s, %s and %s", r.Category, k[0].Plural(), k[1].Plural())
	}
	return r.Category.String()
}

// Outcome is the verdict of a heads-up comparison.
type Outcome int

const (
	Tie Outcome = iota
	PlayerOne
	PlayerTwo
)

// String returns a human-readable verdict.
func (o Outcome) String() string {
	switch o {
	case PlayerOne:
		return "Player one wins"
	case PlayerTwo:
		return "Player two wins"
	default:
		return "It's a tie!"
	}
}

// Winner evaluates two card sets and reports which one is stronger.
func Winner(a, b []Card) (Outcome, Result, Result, error) {
	ra, err := Evaluate(a)
	if err != nil {
		return Tie, Result{}, Result{}, fmt.Errorf("player one: %w", err)
	}
	rb, err := Evaluate(b)
	if err != nil {
		return Tie, Result{}, Result{}, fmt.Errorf("player two: %w", err)
	}

	switch Compare(ra, rb) {
	case 1:
		return PlayerOne, ra, rb, nil
	case -1:
		return PlayerTwo, ra, rb, nil
	default:
		return Tie, ra, rb, nil
	}
}
