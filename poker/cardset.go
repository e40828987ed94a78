package poker

import "fmt"

// CardSet is a bitset over the 52 cards, one bit per card.
type CardSet uint64

func cardBit(card Card) CardSet {
	return 1 << (uint(card.Suit)*NumRanks + uint(card.Rank))
}

// NewCardSet returns the set holding cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add puts card in the set.
func (cs *CardSet) Add(card Card) {
	*cs |= cardBit(card)
}

// Contains reports whether card is in the set.
func (cs CardSet) Contains(card Card) bool {
	return cs&cardBit(card) != 0
}

// AddDistinct adds every card, failing with ErrDuplicateCard on the first
// card already present. Invalid cards fail with ErrInvalidCard.
func (cs *CardSet) AddDistinct(cards ...Card) error {
	for _, card := range cards {
		if !card.Valid() {
			return fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, card.Rank, card.Suit)
		}
		if cs.Contains(card) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		cs.Add(card)
	}
	return nil
}
