package poker

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * NumSuits

// NewFullDeck returns the 52 cards in suit-major order, unshuffled.
func NewFullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Deck deals cards without replacement from a standard 52-card deck.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a deck shuffled with rng. Passing the same seeded source
// reproduces the same deal.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	copy(d.cards[:], NewFullDeck())
	d.Shuffle()
	return d
}

// Shuffle gathers every card back and shuffles using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw deals n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, %d remaining", ErrDeckExhausted, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DrawOne deals a single card.
func (d *Deck) DrawOne() (Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
