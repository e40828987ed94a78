package phh

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/holdem-ranker/internal/showdown"
	"github.com/lox/holdem-ranker/poker"
)

// streets are the board slices dealt on the flop, turn and river.
var streets = [][2]int{{0, 3}, {3, 4}, {4, 5}}

// Cards renders cards in PHH notation, concatenated with no separator.
func Cards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// FromShowdown builds the history of a hand that reached the showdown.
func FromShowdown(h *showdown.Hand, res showdown.Result, at time.Time) *HandHistory {
	seats := len(h.Players)
	hh := &HandHistory{
		Variant:           VariantHoldem,
		Antes:             make([]int, seats),
		BlindsOrStraddles: make([]int, seats),
		StartingStacks:    make([]int, seats),
		HandID:            h.ID,
		Time:              at.Format("15:04:05"),
		TimeZone:          at.Location().String(),
		Day:               at.Day(),
		Month:             int(at.Month()),
		Year:              at.Year(),
	}

	for i, p := range h.Players {
		hh.Players = append(hh.Players, p.Name)
		hh.Actions = append(hh.Actions, fmt.Sprintf("d dh p%d %s", i+1, Cards(p.Hole)))
	}
	for _, s := range streets {
		if len(h.Board) < s[1] {
			break
		}
		hh.Actions = append(hh.Actions, "d db "+Cards(h.Board[s[0]:s[1]]))
	}
	for i, p := range h.Players {
		hh.Actions = append(hh.Actions, fmt.Sprintf("p%d sm %s", i+1, Cards(p.Hole)))
	}

	hands := make([]string, len(res.Hands))
	scores := make([]int64, len(res.Hands))
	for i, r := range res.Hands {
		hands[i] = r.String()
		scores[i] = int64(r.Score)
	}
	hh.Metadata = map[string]any{
		"hands":   hands,
		"scores":  scores,
		"outcome": outcomeText(res.Outcome, hh.Players),
	}
	return hh
}

func outcomeText(o poker.Outcome, players []string) string {
	switch o {
	case poker.PlayerOne:
		return players[0] + " wins"
	case poker.PlayerTwo:
		return players[1] + " wins"
	default:
		return "tie"
	}
}
