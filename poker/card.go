package poker

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rank is a card's face value. Two is 0 and Ace is 12, so plain integer
// comparison gives poker order.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

// Suit is one of the four card groups. Suits carry no order.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

var suitGlyphs = [NumSuits]string{"♣", "♦", "♥", "♠"}

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

var rankPlurals = [NumRanks]string{
	"Deuces", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights",
	"Nines", "Tens", "Jacks", "Queens", "Kings", "Aces",
}

// rankBySymbol and suitBySymbol map an ASCII symbol byte straight to its
// value; entries of -1 are not part of the universe.
var (
	rankBySymbol [256]int8
	suitBySymbol [256]int8
)

func init() {
	for i := range rankBySymbol {
		rankBySymbol[i] = -1
		suitBySymbol[i] = -1
	}
	for i := 0; i < len(rankChars); i++ {
		c := rankChars[i]
		rankBySymbol[c] = int8(i)
		rankBySymbol[lower(c)] = int8(i)
	}
	for i := 0; i < len(suitChars); i++ {
		c := suitChars[i]
		suitBySymbol[c] = int8(i)
		suitBySymbol[c-'a'+'A'] = int8(i)
	}
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// String returns the single character symbol ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankChars[r : r+1]
}

// Symbol returns the display symbol, which spells ten as "10".
func (r Rank) Symbol() string {
	if r == Ten {
		return "10"
	}
	return r.String()
}

// Name returns the English name of the rank ("Ace").
func (r Rank) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Plural returns the plural English name of the rank ("Aces").
func (r Rank) Plural() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankPlurals[r]
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the lower-case suit letter.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitChars[s : s+1]
}

// Symbol returns the Unicode suit glyph.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitGlyphs[s]
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card. Two cards are equal iff rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, rejecting ranks and suits outside the deck.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Valid reports whether both rank and suit lie inside the deck.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns compact notation such as "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns display notation such as "A♠" or "10♦".
func (c Card) Pretty() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// IsRed returns true if the card is a heart or diamond.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseRank converts a rank symbol ("A", "t", "10", "7") to a Rank.
func ParseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	if len(s) != 1 || rankBySymbol[s[0]] < 0 {
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
	}
	return Rank(rankBySymbol[s[0]]), nil
}

// ParseSuit converts a suit letter ("s", "H") or glyph ("♠") to a Suit.
func ParseSuit(s string) (Suit, error) {
	if len(s) == 1 && suitBySymbol[s[0]] >= 0 {
		return Suit(suitBySymbol[s[0]]), nil
	}
	for i, glyph := range suitGlyphs {
		if s == glyph {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
}

// ParseCard parses a single card in rank-then-suit notation: "As", "10h", "Q♦".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty card", ErrInvalidCard)
	}
	_, size := utf8.DecodeLastRuneInString(s)
	if size == len(s) {
		return Card{}, fmt.Errorf("%w: %q is missing a suit", ErrInvalidCard, s)
	}
	rank, err := ParseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	suit, err := ParseSuit(s[len(s)-size:])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas ("As Ks, Qs") or written back to back ("AsKsQsJsTs", "10h9h").
// An empty string yields an empty slice.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})

	cards := []Card{}
	for _, field := range fields {
		tokens, err := splitCards(field)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			card, err := ParseCard(tok)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests and fixtures).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// splitCards cuts back-to-back notation into one token per card. A token is
// a rank symbol ("10" or a single character) followed by a single suit rune.
func splitCards(field string) ([]string, error) {
	var tokens []string
	for pos := 0; pos < len(field); {
		start := pos
		if strings.HasPrefix(field[pos:], "10") {
			pos += 2
		} else {
			pos++
		}
		if pos >= len(field) {
			return nil, fmt.Errorf("%w: incomplete card %q at position %d", ErrInvalidCard, field[start:], start)
		}
		_, size := utf8.DecodeRuneInString(field[pos:])
		pos += size
		tokens = append(tokens, field[start:pos])
	}
	return tokens, nil
}

// FormatCards joins cards in compact notation separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
