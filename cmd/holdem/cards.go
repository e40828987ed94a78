package main

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-ranker/internal/randutil"
	"github.com/lox/holdem-ranker/poker"
)

func parseHands(handStrings []string) ([][]poker.Card, error) {
	var hands [][]poker.Card

	for i, handStr := range handStrings {
		hand, err := poker.ParseCards(strings.TrimSpace(handStr))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		hands = append(hands, hand)
	}

	return hands, nil
}

func parseBoard(s string) ([]poker.Card, error) {
	board, err := poker.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}
	return board, nil
}

func randSeed() int64 {
	return randutil.Seed(nil)
}
