package poker

import (
	"cmp"
	"testing"

	reference "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-ranker/internal/randutil"
)

// toReference converts a card to the independent evaluator's representation,
// which numbers ranks 1-13 with the ace as 1.
func toReference(t testing.TB, c Card) reference.Card {
	t.Helper()
	rank := reference.Rank(c.Rank + 2)
	if c.Rank == Ace {
		rank = 1
	}
	card, err := reference.MakeCard(reference.Suit(c.Suit), rank)
	require.NoError(t, err, c.String())
	return card
}

func referenceEval7(t testing.TB, cards []Card) int16 {
	t.Helper()
	var hand [7]reference.Card
	for i, c := range cards {
		hand[i] = toReference(t, c)
	}
	return reference.Eval7(&hand)
}

// TestAgreesWithReferenceEvaluator deals random heads-up showdowns and checks
// that the winner matches an independently written evaluator.
func TestAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2024)

	for range 5000 {
		cards := randomCards(t, rng, 9)
		board := cards[4:]
		a := append([]Card{cards[0], cards[1]}, board...)
		b := append([]Card{cards[2], cards[3]}, board...)

		outcome, ra, rb, err := Winner(a, b)
		require.NoError(t, err)

		want := cmp.Compare(referenceEval7(t, a), referenceEval7(t, b))
		got := map[Outcome]int{PlayerOne: 1, PlayerTwo: -1, Tie: 0}[outcome]
		require.Equal(t, want, got, "board %s: %s (%s) vs %s (%s)",
			FormatCards(board), FormatCards(a[:2]), ra, FormatCards(b[:2]), rb)
	}
}
