package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/rtameter/internal/config"
	"github.com/olivier-w/rtameter/internal/synth"
	"github.com/rs/zerolog"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Bands = 8
	return New(&cfg, synth.New(cfg.Bands, cfg.FPS, cfg.Seed), zerolog.Nop())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected ui.Model, got %T", next)
	}
	return nm, cmd
}

func TestNewStartsWithOneFrame(t *testing.T) {
	m := newTestModel(t)
	if len(m.bands) != 8 {
		t.Fatalf("expected 8 bands, got %d", len(m.bands))
	}
	if m.state.minDB != -60 {
		t.Fatalf("expected floor -60, got %v", m.state.minDB)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := newTestModel(t)
		next, cmd := update(t, m, keyMsg(k))
		if !next.quitting {
			t.Fatalf("%q: expected quitting", k)
		}
		if cmd == nil {
			t.Fatalf("%q: expected quit command", k)
		}
		if next.View() != "" {
			t.Fatalf("%q: expected empty view after quit", k)
		}
	}
}

func TestToggleKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg("l"))
	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, keyMsg("b"))
	if m.state.showLabels || m.state.highlightPeak || m.state.border {
		t.Fatalf("expected labels, peak and border off, got %+v", m.state)
	}
	m, _ = update(t, m, keyMsg("l"))
	if !m.state.showLabels {
		t.Fatal("expected labels back on")
	}
}

func TestFloorKeysClamp(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg("up"))
	if m.state.minDB != -55 {
		t.Fatalf("expected -55, got %v", m.state.minDB)
	}
	for _i := 0; _i < 20; _i++ {
		m, _ = update(t, m, keyMsg("up"))
	}
	if m.state.minDB != config.MaxFloorDB {
		t.Fatalf("expected floor clamped to %v, got %v", config.MaxFloorDB, m.state.minDB)
	}
	for _i := 0; _i < 40; _i++ {
		m, _ = update(t, m, keyMsg("down"))
	}
	if m.state.minDB != config.MinFloorDB {
		t.Fatalf("expected floor clamped to %v, got %v", config.MinFloorDB, m.state.minDB)
	}
}

func TestPauseFreezesBands(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg(" "))
	if !m.state.paused {
		t.Fatal("expected paused")
	}
	before := m.bands
	m, cmd := update(t, m, frameMsg{})
	if cmd == nil {
		t.Fatal("expected next tick while paused")
	}
	if &m.bands[0] != &before[0] {
		t.Fatal("expected bands untouched while paused")
	}

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, frameMsg{})
	if &m.bands[0] == &before[0] {
		t.Fatal("expected a new frame after resuming")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	short := m.View()
	m, _ = update(t, m, keyMsg("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help")
	}
	full := m.View()
	if !strings.Contains(full, "border") || strings.Contains(short, "border") {
		t.Fatal("expected border key only in full help")
	}
}

func TestViewFillsWindow(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, want := range []string{"rta -60dB", "Peak:", "Band:", "█"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewWithoutSizeUsesFallback(t *testing.T) {
	m := newTestModel(t)
	if lines := strings.Count(m.View(), "\n") + 1; lines != fallbackHeight {
		t.Fatalf("expected %d lines, got %d", fallbackHeight, lines)
	}
}
