package poker

import (
	"cmp"
	"slices"
)

// hand is the working view shared by the detectors: a rank-descending copy
// of the input plus per-rank and per-suit counts over every card.
type hand struct {
	cards  []Card
	counts [NumRanks]uint8
	suits  [NumSuits]uint8
}

func newHand(cards []Card) *hand {
	h := &hand{cards: slices.Clone(cards)}
	slices.SortStableFunc(h.cards, func(a, b Card) int {
		return cmp.Compare(b.Rank, a.Rank)
	})
	for _, c := range h.cards {
		h.counts[c.Rank]++
		h.suits[c.Suit]++
	}
	return h
}

// detector pairs a category with the predicate that recognises it. A match
// returns the category's kickers, most significant first.
type detector struct {
	category HandCategory
	detect   func(h *hand) ([]Rank, bool)
}

// detectors run strongest first; several categories are special cases of
// weaker ones so the first match wins.
var detectors = [NumCategories]detector{
	{RoyalFlush, detectRoyalFlush},
	{StraightFlush, detectStraightFlush},
	{FourOfAKind, detectFourOfAKind},
	{FullHouse, detectFullHouse},
	{Flush, detectFlush},
	{Straight, detectStraight},
	{ThreeOfAKind, detectThreeOfAKind},
	{TwoPair, detectTwoPair},
	{OnePair, detectOnePair},
	{HighCard, detectHighCard},
}

// Detect runs the single detector for category against cards. It reports
// whether the cards contain that category and, if so, its kickers. Unlike
// Evaluate it does not consult stronger categories, so a straight flush also
// matches Straight and Flush. Cards outside the deck never match.
func Detect(category HandCategory, cards []Card) ([]Rank, bool) {
	if checkCards(cards) != nil {
		return nil, false
	}
	for _, d := range detectors {
		if d.category == category {
			return d.detect(newHand(cards))
		}
	}
	return nil, false
}

func detectRoyalFlush(h *hand) ([]Rank, bool) {
	top, ok := h.straightFlushTop()
	if !ok || top != Ace {
		return nil, false
	}
	return []Rank{Ace}, true
}

func detectStraightFlush(h *hand) ([]Rank, bool) {
	top, ok := h.straightFlushTop()
	if !ok {
		return nil, false
	}
	return []Rank{top}, true
}

func detectFourOfAKind(h *hand) ([]Rank, bool) {
	quad, ok := h.highestWithCount(func(n uint8) bool { return n >= 4 }, -1)
	if !ok {
		return nil, false
	}
	return append([]Rank{quad}, h.others(1, quad)...), true
}

func detectFullHouse(h *hand) ([]Rank, bool) {
	three, ok := h.highestWithCount(func(n uint8) bool { return n >= 3 }, -1)
	if !ok {
		return nil, false
	}
	two, ok := h.highestWithCount(func(n uint8) bool { return n >= 2 }, int(three))
	if !ok {
		return nil, false
	}
	return []Rank{three, two}, true
}

func detectFlush(h *hand) ([]Rank, bool) {
	suit, ok := h.flushSuit()
	if !ok {
		return nil, false
	}
	ranks := h.suitRanks(suit)
	return ranks[:5], true
}

func detectStraight(h *hand) ([]Rank, bool) {
	ranks := make([]Rank, len(h.cards))
	for i, c := range h.cards {
		ranks[i] = c.Rank
	}
	top, ok := straightTop(ranks)
	if !ok {
		return nil, false
	}
	return []Rank{top}, true
}

func detectThreeOfAKind(h *hand) ([]Rank, bool) {
	trip, ok := h.highestWithCount(func(n uint8) bool { return n == 3 }, -1)
	if !ok {
		return nil, false
	}
	return append([]Rank{trip}, h.others(2, trip)...), true
}

func detectTwoPair(h *hand) ([]Rank, bool) {
	isPair := func(n uint8) bool { return n == 2 }
	high, ok := h.highestWithCount(isPair, -1)
	if !ok {
		return nil, false
	}
	low, ok := h.highestWithCount(isPair, int(high))
	if !ok {
		return nil, false
	}
	return append([]Rank{high, low}, h.others(1, high, low)...), true
}

func detectOnePair(h *hand) ([]Rank, bool) {
	pair, ok := h.highestWithCount(func(n uint8) bool { return n == 2 }, -1)
	if !ok {
		return nil, false
	}
	return append([]Rank{pair}, h.others(3, pair)...), true
}

func detectHighCard(h *hand) ([]Rank, bool) {
	return h.others(5), true
}

// highestWithCount scans ranks from Ace down and returns the first whose
// count satisfies match. except (or -1) names a rank to skip.
func (h *hand) highestWithCount(match func(uint8) bool, except int) (Rank, bool) {
	for r := int(Ace); r >= int(Two); r-- {
		if r != except && match(h.counts[r]) {
			return Rank(r), true
		}
	}
	return 0, false
}

// others returns up to n distinct ranks present in the hand, highest first,
// skipping the ranks already used by the category.
func (h *hand) others(n int, used ...Rank) []Rank {
	out := make([]Rank, 0, n)
	for r := int(Ace); r >= int(Two) && len(out) < n; r-- {
		if h.counts[r] == 0 || slices.Contains(used, Rank(r)) {
			continue
		}
		out = append(out, Rank(r))
	}
	return out
}

// flushSuit returns the suit holding the most cards when it holds at least
// five. Equal counts resolve to the first suit in iteration order.
func (h *hand) flushSuit() (Suit, bool) {
	best := -1
	for s := range NumSuits {
		if h.suits[s] >= 5 && (best < 0 || h.suits[s] > h.suits[best]) {
			best = s
		}
	}
	if best < 0 {
		return 0, false
	}
	return Suit(best), true
}

// suitRanks returns the ranks of the cards of one suit, highest first.
func (h *hand) suitRanks(suit Suit) []Rank {
	ranks := make([]Rank, 0, h.suits[suit])
	for _, c := range h.cards {
		if c.Suit == suit {
			ranks = append(ranks, c.Rank)
		}
	}
	return ranks
}

// straightFlushTop checks for a straight among the flush suit's cards only.
func (h *hand) straightFlushTop() (Rank, bool) {
	suit, ok := h.flushSuit()
	if !ok {
		return 0, false
	}
	return straightTop(h.suitRanks(suit))
}

// straightTop returns the top card of the highest run of five consecutive
// ranks. ranks must be sorted high to low; duplicates are ignored and an Ace
// also plays below the Two, so the wheel (A-2-3-4-5) reports Five.
func straightTop(ranks []Rank) (Rank, bool) {
	values := make([]int, 0, len(ranks)+1)
	for _, r := range ranks {
		if len(values) == 0 || values[len(values)-1] != int(r) {
			values = append(values, int(r))
		}
	}
	if len(values) > 0 && values[0] == int(Ace) {
		values = append(values, -1)
	}

	for i := 0; i+4 < len(values); i++ {
		// Strictly descending, so a span of four across five entries means consecutive.
		if values[i]-values[i+4] == 4 {
			return Rank(values[i]), true
		}
	}
	return 0, false
}
