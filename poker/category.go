package poker

// HandCategory enumerates the ten poker hand categories ordered from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

var categoryNames = [NumCategories]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// String returns the human-readable category name.
func (c HandCategory) String() string {
	if int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns every category from strongest to weakest, the order in
// which they are detected.
func Categories() []HandCategory {
	out := make([]HandCategory, 0, NumCategories)
	for c := RoyalFlush; ; c-- {
		out = append(out, c)
		if c == HighCard {
			return out
		}
	}
}
