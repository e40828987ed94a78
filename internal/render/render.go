// Package render formats cards and hand results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-ranker/poker"
)

// Renderer holds the styles for one output stream.
type Renderer struct {
	unicode bool

	Header   lipgloss.Style
	Hand     lipgloss.Style
	RedCard  lipgloss.Style
	Black    lipgloss.Style
	Category lipgloss.Style
	Win      lipgloss.Style
	Tie      lipgloss.Style
	Percent  lipgloss.Style
	Info     lipgloss.Style
	Hidden   lipgloss.Style
}

// New creates a renderer writing to w. With color off every style renders
// plain text; with unicode off suits are shown as letters.
func New(w io.Writer, color, unicode bool) *Renderer {
	var lr *lipgloss.Renderer
	if color {
		lr = lipgloss.NewRenderer(w)
	} else {
		lr = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	return newWithRenderer(lr, unicode)
}

// NewWithProfile creates a renderer with a fixed color profile, for tests and
// for output that is not a terminal.
func NewWithProfile(w io.Writer, profile termenv.Profile, unicode bool) *Renderer {
	return newWithRenderer(lipgloss.NewRenderer(w, termenv.WithProfile(profile)), unicode)
}

func newWithRenderer(lr *lipgloss.Renderer, unicode bool) *Renderer {
	return &Renderer{
		unicode: unicode,

		Header: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		Hand: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		RedCard: lr.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Black: lr.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Category: lr.NewStyle().
			Foreground(lipgloss.Color("12")),
		Win: lr.NewStyle().
			Foreground(lipgloss.Color("10")),
		Tie: lr.NewStyle().
			Foreground(lipgloss.Color("11")),
		Percent: lr.NewStyle().
			Foreground(lipgloss.Color("9")),
		Info: lr.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Hidden: lr.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders a single card, red suits in red.
func (r *Renderer) Card(c poker.Card) string {
	text := c.String()
	if r.unicode {
		text = c.Pretty()
	}
	if c.IsRed() {
		return r.RedCard.Render(text)
	}
	return r.Black.Render(text)
}

// Cards renders cards separated by spaces. An empty set renders as "-".
func (r *Renderer) Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return r.Info.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// HiddenCards renders n face-down cards.
func (r *Renderer) HiddenCards(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = r.Hidden.Render("??")
	}
	return strings.Join(parts, " ")
}

// Result renders a classification with its kickers and score.
func (r *Renderer) Result(res poker.Result) string {
	kickers := make([]string, len(res.Kickers))
	for i, k := range res.Kickers {
		kickers[i] = k.Symbol()
	}
	return fmt.Sprintf("%s %s %s",
		r.Category.Render(res.String()),
		r.Info.Render("kickers ["+strings.Join(kickers, " ")+"]"),
		r.Info.Render(fmt.Sprintf("score %d", res.Score)))
}

// Outcome renders a heads-up verdict using the given player names.
func (r *Renderer) Outcome(o poker.Outcome, names [2]string) string {
	switch o {
	case poker.PlayerOne:
		return r.Win.Render(names[0] + " wins")
	case poker.PlayerTwo:
		return r.Win.Render(names[1] + " wins")
	default:
		return r.Tie.Render(o.String())
	}
}

// Pct renders a percentage, or "." when it is zero.
func (r *Renderer) Pct(v float64) string {
	if v == 0 {
		return r.Percent.Render(".")
	}
	return r.Percent.Render(fmt.Sprintf("%.1f%%", v))
}
