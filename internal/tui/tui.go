// Package tui is an interactive heads-up table: a hand is dealt, the user
// steps through the streets and the opponent's cards are revealed at the
// showdown.
package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-ranker/internal/handid"
	"github.com/lox/holdem-ranker/internal/render"
	"github.com/lox/holdem-ranker/internal/showdown"
	"github.com/lox/holdem-ranker/poker"
)

const (
	logPaneHeight   = 8
	sidebarMinWidth = 22
)

// Options configures the table.
type Options struct {
	Names    [2]string
	Rand     *rand.Rand
	Renderer *render.Renderer
	Logger   *log.Logger
	IDs      *handid.Generator
}

// Model is the Bubble Tea model for the heads-up table.
type Model struct {
	rng    *rand.Rand
	names  [2]string
	ids    *handid.Generator
	render *render.Renderer
	logger *log.Logger

	hand   *showdown.Hand
	result *showdown.Result
	err    error

	// wins for each seat, then ties
	tally [3]int
	hands int

	keys        keyMap
	help        help.Model
	logViewport viewport.Model
	gameLog     []string

	width    int
	height   int
	quitting bool
}

// New creates a table and deals the first hand.
func New(opts Options) *Model {
	if opts.Names[0] == "" {
		opts.Names[0] = "Player"
	}
	if opts.Names[1] == "" {
		opts.Names[1] = "Opponent"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(io.Discard, false, true)
	}
	if opts.IDs == nil {
		opts.IDs = handid.NewGenerator(nil, nil)
	}

	m := &Model{
		rng:         opts.Rand,
		names:       opts.Names,
		ids:         opts.IDs,
		render:      opts.Renderer,
		logger:      opts.Logger.WithPrefix("tui"),
		keys:        defaultKeys(),
		help:        help.New(),
		logViewport: viewport.New(40, logPaneHeight),
	}
	m.logViewport.KeyMap = viewport.KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
	}
	m.deal()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logViewport.Width = max(msg.Width-2, 1)
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Deal):
			m.deal()
		case key.Matches(msg, m.keys.Next):
			if m.hand == nil || m.hand.Stage() == showdown.Showdown {
				m.deal()
			} else {
				m.advance()
			}
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) deal() {
	deck := poker.NewDeck(m.rng)
	hand, err := showdown.Deal(deck, showdown.Options{
		Names:  m.names,
		Logger: m.logger,
		IDs:    m.ids,
	})
	m.result = nil
	if err != nil {
		m.fail(err)
		return
	}
	m.hand = hand
	m.err = nil
	m.hands++

	hole := hand.Players[0].Hole
	m.AddLogEntry(fmt.Sprintf("Hand #%d dealt: %s (%s)", m.hands,
		m.render.Cards(hole), poker.CategorizeHoleCards(hole[0], hole[1])))
}

func (m *Model) advance() {
	if err := m.hand.Advance(); err != nil {
		m.fail(err)
		return
	}

	stage := m.hand.Stage()
	if stage != showdown.Showdown {
		m.AddLogEntry(fmt.Sprintf("%s: %s", stage, m.render.Cards(m.hand.Board)))
		return
	}

	res, err := m.hand.Result()
	if err != nil {
		m.fail(err)
		return
	}
	m.result = &res
	switch res.Outcome {
	case poker.PlayerOne:
		m.tally[0]++
	case poker.PlayerTwo:
		m.tally[1]++
	default:
		m.tally[2]++
	}
	m.AddLogEntry(fmt.Sprintf("Showdown: %s shows %s. %s",
		m.names[1], m.render.Cards(m.hand.Players[1].Hole),
		m.render.Outcome(res.Outcome, m.names)))
}

func (m *Model) fail(err error) {
	m.err = err
	m.logger.Error("Hand failed", "error", err)
	m.AddLogEntry(ErrorStyle.Render("Error: " + err.Error()))
}

// AddLogEntry appends a line to the hand log and scrolls to it.
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// GameLog returns the hand log lines.
func (m *Model) GameLog() []string {
	return m.gameLog
}

// Hand returns the hand in progress.
func (m *Model) Hand() *showdown.Hand {
	return m.hand
}

// Result returns the showdown result, or nil before the showdown.
func (m *Model) Result() *showdown.Result {
	return m.result
}

// Tally returns wins for each seat followed by ties.
func (m *Model) Tally() [3]int {
	return m.tally
}

// Err returns the last error, if any.
func (m *Model) Err() error {
	return m.err
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render("Texas Hold'em")
	if m.hand != nil {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, " ",
			StageStyle.Render(m.hand.Stage().String()), " ",
			InfoStyle.Render(m.hand.ID))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		tableBorder.Render(m.renderTable()),
		paneBorder.Width(sidebarMinWidth).Render(m.renderSidebar()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		top,
		paneBorder.Render(m.logViewport.View()),
		m.help.View(m.keys))
}

func (m *Model) renderTable() string {
	if m.hand == nil {
		return ErrorStyle.Render(errorText(m.err))
	}

	var b strings.Builder
	opponent := m.render.HiddenCards(showdown.HoleCards)
	if m.hand.Stage() == showdown.Showdown {
		opponent = m.render.Cards(m.hand.Players[1].Hole)
	}
	fmt.Fprintf(&b, "%s  %s\n", SeatStyle.Render(m.names[1]), opponent)
	fmt.Fprintf(&b, "%s  %s\n", SeatStyle.Render("Board"), m.render.Cards(m.hand.Board))
	fmt.Fprintf(&b, "%s  %s", SeatStyle.Render(m.names[0]), m.render.Cards(m.hand.Players[0].Hole))

	if m.result != nil {
		fmt.Fprintf(&b, "\n\n%s: %s\n%s: %s\n%s",
			m.names[0], m.render.Result(m.result.Hands[0]),
			m.names[1], m.render.Result(m.result.Hands[1]),
			m.render.Outcome(m.result.Outcome, m.names))
	}
	return b.String()
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hands: %d\n", m.hands)
	fmt.Fprintf(&b, "%s: %d\n", m.names[0], m.tally[0])
	fmt.Fprintf(&b, "%s: %d\n", m.names[1], m.tally[1])
	fmt.Fprintf(&b, "Ties: %d", m.tally[2])
	return b.String()
}

func errorText(err error) string {
	if err == nil {
		return "No hand dealt"
	}
	var msg strings.Builder
	msg.WriteString(err.Error())
	if errors.Is(err, poker.ErrDeckExhausted) {
		msg.WriteString(" (press d to deal again)")
	}
	return msg.String()
}
