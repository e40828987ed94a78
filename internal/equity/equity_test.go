package equity

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-ranker/poker"
)

func newTestCalculator(t *testing.T) (*Calculator, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewCalculator(clock, logger), clock
}

func hands(strs ...string) [][]poker.Card {
	out := make([][]poker.Card, len(strs))
	for i, s := range strs {
		out[i] = poker.MustParseCards(s)
	}
	return out
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		hands  [][]poker.Card
		board  string
		minWin float64
		maxWin float64
	}{
		{"Aces vs seven-deuce", hands("As Ad", "7h 2c"), "", 80, 95},
		{"Seven-deuce vs aces", hands("7h 2c", "As Ad"), "", 5, 20},
		{"Set vs overpair on the flop", hands("7s 7d", "Ah Ac"), "7c Kd 2h", 85, 100},
		{"Coin flip", hands("Ah Kh", "Qs Qd"), "", 40, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, _ := newTestCalculator(t)
			res, err := calc.Calculate(context.Background(), Request{
				Hands:      tt.hands,
				Board:      poker.MustParseCards(tt.board),
				Iterations: 5000,
				Workers:    4,
				Seed:       12345,
			})
			require.NoError(t, err)
			require.Len(t, res.Players, 2)

			win := res.Players[0].WinPct()
			assert.GreaterOrEqual(t, win, tt.minWin)
			assert.LessOrEqual(t, win, tt.maxWin)

			total := res.Players[0].Wins + res.Players[1].Wins + res.Players[0].Ties
			assert.Equal(t, 5000, total, "every deal is a win for one side or a tie")
			assert.Equal(t, res.Players[0].Ties, res.Players[1].Ties)
		})
	}
}

func TestCalculateCompleteBoardIsDeterministic(t *testing.T) {
	calc, _ := newTestCalculator(t)
	res, err := calc.Calculate(context.Background(), Request{
		Hands:      hands("As Ad", "7h 2c"),
		Board:      poker.MustParseCards("Ac Kd 9s 4h 3c"),
		Iterations: 1000,
		Workers:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Players[0].WinPct())
	assert.Equal(t, 0.0, res.Players[1].WinPct())
	assert.Equal(t, 1000, res.Players[0].Possibilities[poker.ThreeOfAKind])
	assert.Equal(t, 1000, res.Players[1].Possibilities[poker.HighCard])
}

func TestCalculateBoardPlays(t *testing.T) {
	calc, _ := newTestCalculator(t)
	res, err := calc.Calculate(context.Background(), Request{
		Hands:      hands("2c 3d", "4c 5d"),
		Board:      poker.MustParseCards("As Ks Qs Js Ts"),
		Iterations: 100,
		Workers:    2,
	})
	require.NoError(t, err)

	for _, p := range res.Players {
		assert.Zero(t, p.Wins)
		assert.Equal(t, 100.0, p.TiePct())
		assert.Equal(t, 100.0, p.CategoryPct(poker.RoyalFlush))
	}
}

func TestCalculateIsReproducible(t *testing.T) {
	req := Request{
		Hands:      hands("Jh Th", "9c 9d"),
		Board:      poker.MustParseCards("8h 2s"),
		Iterations: 3000,
		Workers:    3,
		Seed:       99,
	}

	calc, _ := newTestCalculator(t)
	first, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)
	second, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Players, second.Players)
}

func TestCalculateElapsedUsesClock(t *testing.T) {
	calc, _ := newTestCalculator(t)
	res, err := calc.Calculate(context.Background(), Request{
		Hands:      hands("As Ad", "Kc Kd"),
		Iterations: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), res.Elapsed, "mock clock does not advance on its own")
	assert.Equal(t, 10, res.Players[0].Total)
}

func TestCalculateCancelled(t *testing.T) {
	calc, _ := newTestCalculator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := calc.Calculate(ctx, Request{
		Hands:      hands("As Ad", "Kc Kd"),
		Iterations: 100000,
		Workers:    2,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateInvalidIterations(t *testing.T) {
	calc, _ := newTestCalculator(t)
	_, err := calc.Calculate(context.Background(), Request{Hands: hands("As Ad", "Kc Kd")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be positive")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		hands [][]poker.Card
		board string
		want  error
	}{
		{"valid", hands("As Ad", "Kc Kd"), "2h 3h 4h", nil},
		{"one hand", hands("As Ad"), "", ErrHandCount},
		{"three hands", hands("As Ad", "Kc Kd", "Qs Qh"), "", ErrHandCount},
		{"three card hand", hands("As Ad Ah", "Kc Kd"), "", ErrHoleCards},
		{"six card board", hands("As Ad", "Kc Kd"), "2h 3h 4h 5h 6h 7h", ErrBoardTooLarge},
		{"shared hole card", hands("As Ad", "As Kd"), "", ErrDuplicateCard},
		{"hole card on board", hands("As Ad", "Kc Kd"), "2h Kd 4h", ErrDuplicateCard},
		{"repeated board card", hands("As Ad", "Kc Kd"), "2h 2h", ErrDuplicateCard},
		{"invalid hole card", [][]poker.Card{{{Rank: 13}, {Rank: poker.Ace}}, hands("Kc Kd")[0]}, "", poker.ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.hands, poker.MustParseCards(tt.board))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func BenchmarkCalculate(b *testing.B) {
	calc := NewCalculator(nil, nil)
	req := Request{
		Hands:      hands("As Ks", "Qh Qd"),
		Iterations: 10000,
		Workers:    4,
		Seed:       1,
	}
	for b.Loop() {
		if _, err := calc.Calculate(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}
