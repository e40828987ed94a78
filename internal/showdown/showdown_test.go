package showdown

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-ranker/internal/handid"
	"github.com/lox/holdem-ranker/internal/randutil"
	"github.com/lox/holdem-ranker/poker"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Names:  [2]string{"Alice", "Bob"},
		Logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
		IDs:    handid.NewGenerator(quartz.NewMock(t), randutil.New(1)),
	}
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, "Pre-Flop", PreFlop.String())
	assert.Equal(t, "Flop", Flop.String())
	assert.Equal(t, "Turn", Turn.String())
	assert.Equal(t, "River", River.String())
	assert.Equal(t, "Showdown", Showdown.String())
	assert.Equal(t, "Unknown", Stage(9).String())
}

func TestDealAndAdvance(t *testing.T) {
	deck := poker.NewDeck(randutil.New(42))
	h, err := Deal(deck, testOptions(t))
	require.NoError(t, err)

	assert.Len(t, h.ID, handid.Length)
	assert.Equal(t, PreFlop, h.Stage())
	assert.Len(t, h.Players[0].Hole, 2)
	assert.Len(t, h.Players[1].Hole, 2)
	assert.Empty(t, h.Board)
	assert.Equal(t, poker.DeckSize-4, deck.Remaining())

	wantBoard := []int{3, 4, 5, 5}
	for i, want := range wantBoard {
		require.NoError(t, h.Advance())
		assert.Equal(t, Stage(i+1), h.Stage())
		assert.Len(t, h.Board, want, "board at %s", h.Stage())
	}
	assert.Equal(t, poker.DeckSize-9, deck.Remaining())

	assert.ErrorIs(t, h.Advance(), ErrHandComplete)
}

func TestCardsAreDistinct(t *testing.T) {
	h, _, err := Play(poker.NewDeck(randutil.New(7)), testOptions(t), nil)
	require.NoError(t, err)

	seen := make(map[poker.Card]bool)
	for p := range h.Players {
		for _, c := range h.Players[p].Hole {
			assert.False(t, seen[c], "duplicate %s", c)
			seen[c] = true
		}
	}
	for _, c := range h.Board {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 9)
	assert.Len(t, h.Cards(0), 7)
	assert.Len(t, h.Cards(1), 7)
}

func TestResultBeforeShowdown(t *testing.T) {
	h, err := Deal(poker.NewDeck(randutil.New(3)), testOptions(t))
	require.NoError(t, err)
	require.NoError(t, h.Advance())

	_, err = h.Result()
	require.ErrorIs(t, err, ErrNotAtShowdown)
	assert.Contains(t, err.Error(), "Flop")
}

func TestResultMatchesWinner(t *testing.T) {
	for seed := range int64(50) {
		h, res, err := Play(poker.NewDeck(randutil.New(seed)), testOptions(t), nil)
		require.NoError(t, err)

		outcome, a, b, err := poker.Winner(h.Cards(0), h.Cards(1))
		require.NoError(t, err)
		assert.Equal(t, outcome, res.Outcome)
		assert.Equal(t, a, res.Hands[0])
		assert.Equal(t, b, res.Hands[1])
	}
}

func TestPlayObservesEveryStage(t *testing.T) {
	var stages []Stage
	_, _, err := Play(poker.NewDeck(randutil.New(11)), testOptions(t), func(h *Hand) {
		stages = append(stages, h.Stage())
	})
	require.NoError(t, err)
	assert.Equal(t, []Stage{PreFlop, Flop, Turn, River, Showdown}, stages)
}

func TestDealExhaustedDeck(t *testing.T) {
	deck := poker.NewDeck(randutil.New(5))
	_, err := deck.Draw(poker.DeckSize - 6)
	require.NoError(t, err)

	h, err := Deal(deck, testOptions(t))
	require.NoError(t, err)
	err = h.Advance()
	require.ErrorIs(t, err, poker.ErrDeckExhausted)
	assert.Equal(t, PreFlop, h.Stage(), "stage must not move on a failed deal")

	_, err = Deal(deck, testOptions(t))
	assert.ErrorIs(t, err, poker.ErrDeckExhausted)
}

func TestDefaults(t *testing.T) {
	h, err := Deal(poker.NewDeck(randutil.New(1)), Options{})
	require.NoError(t, err)
	assert.Equal(t, [2]string{"Player", "Opponent"}, h.Names())
}

func TestShowdownIsLogged(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(t)
	opts.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	h, _, err := Play(poker.NewDeck(randutil.New(9)), opts, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Dealt hole cards")
	assert.Contains(t, out, "Showdown")
	assert.Contains(t, out, h.ID)
}
