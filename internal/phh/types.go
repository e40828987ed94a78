// Package phh records dealt hands in the Poker Hand History (PHH) TOML format.
package phh

// HandHistory is one hand in PHH form. Showdown hands carry no betting, so
// antes, blinds and stacks are all zero.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZone          string         `toml:"time_zone,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`
}

// VariantHoldem is the PHH code for no-limit Texas Hold'em.
const VariantHoldem = "NT"
