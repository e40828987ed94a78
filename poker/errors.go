package poker

import "errors"

var (
	// ErrInvalidCard is returned when a rank or suit falls outside the 52-card universe.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInsufficientCards is returned when fewer than five cards are evaluated.
	ErrInsufficientCards = errors.New("insufficient cards")

	// ErrDuplicateCard is returned when the same card appears twice where cards must be distinct.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrDeckExhausted is returned when drawing more cards than the deck holds.
	ErrDeckExhausted = errors.New("deck exhausted")
)
