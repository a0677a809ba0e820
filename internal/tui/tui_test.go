package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/gilded-rose/internal/config"
	"github.com/handiism/gilded-rose/internal/inventory"
	"github.com/handiism/gilded-rose/internal/simulation"
)

func newTestModel(days int) Model {
	settings := config.DefaultSettings()
	settings.Days = days
	return NewModel(context.Background(), settings, inventory.Default())
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press sends a key and, if a step command is returned, feeds its message back.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	if done, ok := cmd().(StepDoneMsg); ok {
		next, _ = m.Update(done)
		m = next.(Model)
	}
	return m
}

func TestModel_StepAdvancesDay(t *testing.T) {
	m := newTestModel(5)

	m = press(t, m, runeKey('n'))
	if m.snapshot.Day != 1 {
		t.Fatalf("day = %d, want 1", m.snapshot.Day)
	}
	if got := m.snapshot.Items[0].Quality; got != 19 {
		t.Errorf("vest quality = %d, want 19", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.snapshot.Day != 2 {
		t.Fatalf("day = %d, want 2", m.snapshot.Day)
	}
}

func TestModel_CompletesAtConfiguredDays(t *testing.T) {
	m := newTestModel(2)

	m = press(t, m, runeKey('n'))
	m = press(t, m, runeKey('n'))
	if m.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", m.state)
	}

	// Stepping is ignored once complete.
	m = press(t, m, runeKey('n'))
	if m.snapshot.Day != 2 {
		t.Errorf("day = %d, want 2", m.snapshot.Day)
	}
}

func TestModel_Reset(t *testing.T) {
	m := newTestModel(3)
	m = press(t, m, runeKey('n'))
	m = press(t, m, runeKey('r'))

	if m.snapshot.Day != 0 {
		t.Errorf("day = %d, want 0", m.snapshot.Day)
	}
	if got := m.snapshot.Items[0].Quality; got != 20 {
		t.Errorf("vest quality = %d, want 20", got)
	}
	if m.state != StatePaused {
		t.Errorf("state = %v, want StatePaused", m.state)
	}
}

func TestModel_StepFinishingAfterResetIsDropped(t *testing.T) {
	m := newTestModel(5)

	next, stepCmd := m.Update(runeKey('n'))
	m = next.(Model)
	late := stepCmd().(StepDoneMsg)

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)

	next, _ = m.Update(late)
	m = next.(Model)
	if m.snapshot.Day != 0 {
		t.Errorf("day = %d, want 0 after reset", m.snapshot.Day)
	}
	if m.snapshot.Day != m.sim.Day() {
		t.Errorf("view at day %d, simulator at day %d", m.snapshot.Day, m.sim.Day())
	}
}

func TestModel_StepStartedBeforeResetTracksSimulator(t *testing.T) {
	m := newTestModel(5)

	next, stepCmd := m.Update(runeKey('n'))
	m = next.(Model)
	next, _ = m.Update(runeKey('r'))
	m = next.(Model)

	// The step only reaches the simulator after the reset.
	next, _ = m.Update(stepCmd())
	m = next.(Model)
	if m.snapshot.Day != m.sim.Day() {
		t.Errorf("view at day %d, simulator at day %d", m.snapshot.Day, m.sim.Day())
	}
}

func TestModel_TogglePlay(t *testing.T) {
	m := newTestModel(3)

	next, cmd := m.Update(runeKey('a'))
	m = next.(Model)
	if m.state != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying", m.state)
	}
	if cmd == nil {
		t.Fatal("expected a tick command")
	}

	next, _ = m.Update(runeKey('a'))
	m = next.(Model)
	if m.state != StatePaused {
		t.Errorf("state = %v, want StatePaused", m.state)
	}

	// A stale tick after pausing does nothing.
	_, cmd = m.Update(TickMsg{})
	if cmd != nil {
		t.Error("tick while paused should not step")
	}
}

func TestModel_WorthlessWarningLogged(t *testing.T) {
	m := newTestModel(20)
	for range 11 {
		m = press(t, m, runeKey('n'))
	}

	found := false
	for _, log := range m.logs {
		if log.Level == simulation.LevelWarning {
			found = true
		}
	}
	if !found {
		t.Error("expected a warning once a backstage pass expired")
	}
	if len(m.logs) > maxLogs {
		t.Errorf("logs = %d, want at most %d", len(m.logs), maxLogs)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(1)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(4)
	view := m.View()

	for _, want := range []string{"Gilded Rose", "Day 0 of 4", "Aged Brie", "legendary"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
