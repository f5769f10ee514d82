// Package tui is a terminal dashboard that drives the simulation without a
// window.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pthm-cable/flappy/game"
)

// FrameInterval is the delay between simulation updates.
const FrameInterval = 16 * time.Millisecond

const historySize = 8

// TickMsg triggers one Update of the game.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the bubbletea model wrapping a game.
type Model struct {
	game      *game.Game
	startTime time.Time
	maxTicks  int32
	maxGens   int

	lastGen int
	history []string // most recent generation first
	done    bool
}

// New creates a model. maxTicks and maxGenerations stop the program when
// reached; zero means unlimited.
func New(g *game.Game, maxTicks int32, maxGenerations int) Model {
	return Model{
		game:      g,
		startTime: time.Now(),
		maxTicks:  maxTicks,
		maxGens:   maxGenerations,
		lastGen:   g.Generation(),
	}
}

// Init starts the update ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles key presses and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "right", "l":
			m.game.SetGameSpeed(1)
		case "left", "h":
			m.game.SetGameSpeed(-1)
		}
	case TickMsg:
		m.game.Update()
		m.recordGenerations()
		if m.limitReached() {
			m.done = true
			return m, tea.Quit
		}
		return m, tickCmd()
	}
	return m, nil
}

// recordGenerations adds a history line for a generation that just ended.
func (m *Model) recordGenerations() {
	if m.game.Generation() == m.lastGen {
		return
	}
	m.lastGen = m.game.Generation()

	stats, ok := m.game.LastStats()
	if !ok {
		return
	}
	champion := ""
	if stats.ChampionUpdated {
		champion = " *"
	}
	line := fmt.Sprintf("gen %4d  score %3d  ticks %6d  survival %6.0f%s",
		stats.Generation, stats.Score, stats.Ticks, stats.SurvivalMean, champion)
	m.history = append([]string{line}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
}

func (m Model) limitReached() bool {
	if m.maxTicks > 0 && m.game.Tick() >= m.maxTicks {
		return true
	}
	return m.maxGens > 0 && m.game.Generation() > m.maxGens
}

// View renders the dashboard.
func (m Model) View() string {
	if m.done {
		return fmt.Sprintf("Stopped at generation %d, best score %d.\n", m.game.Generation(), m.game.BestScore())
	}

	g := m.game
	elapsed := time.Since(m.startTime)
	var tps float64
	if elapsed.Seconds() >= 1 {
		tps = float64(g.Tick()) / elapsed.Seconds()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generation:  %d\n", g.Generation())
	fmt.Fprintf(&b, "Score:       %d\n", g.Score())
	fmt.Fprintf(&b, "Best score:  %d\n", g.BestScore())
	fmt.Fprintf(&b, "Alive:       %d/%d\n", g.Alive(), g.Config().Population.Size)
	fmt.Fprintf(&b, "Game speed:  %d\n", g.Speed())
	fmt.Fprintf(&b, "Tick:        %d (%.0f/s)\n", g.Tick(), tps)
	fmt.Fprintf(&b, "Duration:    %s\n", elapsed.Round(time.Second))

	champ := g.Champion()
	if champ.Has() {
		fmt.Fprintf(&b, "Champion:    bird %d from generation %d (%d updates)\n", champ.BirdID(), champ.Generation(), champ.Updates())
	} else {
		b.WriteString("Champion:    none\n")
	}

	b.WriteString("\nRecent generations:\n")
	if len(m.history) == 0 {
		b.WriteString("  (none yet)\n")
	}
	for _, line := range m.history {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\nleft/right: speed  q: quit\n")
	return b.String()
}
