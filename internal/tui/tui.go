// Package tui provides a Bubble Tea terminal user interface for stepping
// through simulated days.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/gilded-rose/internal/config"
	"github.com/handiism/gilded-rose/internal/model"
	"github.com/handiism/gilded-rose/internal/report"
	"github.com/handiism/gilded-rose/internal/simulation"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// maxLogs bounds the log pane.
const maxLogs = 8

// State represents the current UI state.
type State int

const (
	StatePaused State = iota
	StatePlaying
	StateComplete
	StateError
)

// keyMap holds the TUI key bindings.
type keyMap struct {
	Step  key.Binding
	Play  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Play, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Step:  key.NewBinding(key.WithKeys("n", " ", "space"), key.WithHelp("n/space", "next day")),
	Play:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-play")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// eventBuffer collects simulator progress events between steps.
type eventBuffer struct {
	mu     sync.Mutex
	events []simulation.ProgressEvent
}

func (b *eventBuffer) add(e simulation.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *eventBuffer) drain() []simulation.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	progress progress.Model
	help     help.Model
	settings *config.Settings
	rules    *model.Rules
	sim      *simulation.Simulator
	events   *eventBuffer
	gen      int // bumped on reset to spot stale step results
	snapshot report.Snapshot
	logs     []simulation.ProgressEvent
	err      error
	ctx      context.Context

	width int
}

// NewModel creates a new TUI model over the given seed inventory.
func NewModel(ctx context.Context, settings *config.Settings, items []*model.Item) Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	events := &eventBuffer{}
	sim := simulation.New(settings, nil, events.add)
	sim.Initialize(items)
	events.drain()

	return Model{
		state:    StatePaused,
		progress: prog,
		help:     help.New(),
		settings: settings,
		rules:    settings.ToRules(),
		sim:      sim,
		events:   events,
		snapshot: sim.Snapshot(),
		ctx:      ctx,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Message types
type (
	// StepDoneMsg is sent when a day has been simulated.
	StepDoneMsg struct {
		Gen      int
		Snapshot report.Snapshot
		Events   []simulation.ProgressEvent
		Err      error
	}

	// TickMsg drives auto-play.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Step):
			if m.state == StatePaused {
				return m, m.step()
			}

		case key.Matches(msg, keys.Play):
			switch m.state {
			case StatePaused:
				m.state = StatePlaying
				return m, m.tick()
			case StatePlaying:
				m.state = StatePaused
			}

		case key.Matches(msg, keys.Reset):
			m.gen++
			m.sim.Reset()
			m.events.drain()
			m.snapshot = m.sim.Snapshot()
			m.logs = nil
			m.err = nil
			m.state = StatePaused
			return m, m.progress.SetPercent(0)
		}

	case TickMsg:
		if m.state == StatePlaying {
			return m, m.step()
		}

	case StepDoneMsg:
		if msg.Gen != m.gen {
			// Started before a reset; show what the simulator holds now.
			m.events.drain()
			m.snapshot = m.sim.Snapshot()
			return m, m.progress.SetPercent(m.percent())
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.snapshot = msg.Snapshot
		m.logs = append(m.logs, msg.Events...)
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

		cmds := []tea.Cmd{m.progress.SetPercent(m.percent())}
		if m.settings.Days > 0 && m.snapshot.Day >= m.settings.Days {
			m.state = StateComplete
		} else if m.state == StatePlaying {
			cmds = append(cmds, m.tick())
		}
		return m, tea.Batch(cmds...)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// step advances the simulator by one day in the background.
func (m Model) step() tea.Cmd {
	sim, events, ctx, gen := m.sim, m.events, m.ctx, m.gen
	return func() tea.Msg {
		snap, err := sim.Step(ctx)
		return StepDoneMsg{Gen: gen, Snapshot: snap, Events: events.drain(), Err: err}
	}
}

// tick schedules the next auto-play step.
func (m Model) tick() tea.Cmd {
	interval := time.Duration(m.settings.AutoPlayIntervalMilli) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func (m Model) percent() float64 {
	if m.settings.Days <= 0 {
		return 0
	}
	return min(float64(m.snapshot.Day)/float64(m.settings.Days), 1)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Gilded Rose"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Nightly inventory aging"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render(m.dayLine()))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n\n")

	b.WriteString(m.renderItems())
	b.WriteString("\n")

	switch m.state {
	case StateComplete:
		b.WriteString(successStyle.Render(fmt.Sprintf("Reached day %d", m.snapshot.Day)))
		b.WriteString("\n")
	case StateError:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m Model) dayLine() string {
	status := "paused"
	if m.state == StatePlaying {
		status = "playing"
	}
	if m.settings.Days > 0 {
		return fmt.Sprintf("Day %d of %d (%s)", m.snapshot.Day, m.settings.Days, status)
	}
	return fmt.Sprintf("Day %d (%s)", m.snapshot.Day, status)
}

// renderItems draws the inventory table with a category column.
func (m Model) renderItems() string {
	t := report.Table(m.snapshot.Items)

	var cats strings.Builder
	for _, item := range m.snapshot.Items {
		class := m.rules.Classify(item.Name)
		label := class.Category.String()
		if class.Conjured {
			label += "+conjured"
		}
		cats.WriteString(dimStyle.Render("  " + label))
		cats.WriteString("\n")
	}

	// Table rows start after the top border and header lines.
	return lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), "\n\n\n"+cats.String())
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case simulation.LevelError:
			style = errorStyle
			prefix = "✗"
		case simulation.LevelWarning:
			style = warningStyle
			prefix = "!"
		case simulation.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case simulation.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the TUI application.
func Run(ctx context.Context, settings *config.Settings, items []*model.Item) error {
	p := tea.NewProgram(NewModel(ctx, settings, items), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
