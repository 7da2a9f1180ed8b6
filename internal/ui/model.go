package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rtameter/internal/config"
	"github.com/olivier-w/rtameter/internal/grid"
	"github.com/olivier-w/rtameter/internal/rta"
	"github.com/olivier-w/rtameter/internal/synth"
	"github.com/rs/zerolog"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Model is the Bubbletea model for the meter demo.
type Model struct {
	source *synth.Source
	log    zerolog.Logger
	fps    int

	state meterState
	bands []rta.Band

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// New creates a Model that pulls one frame from source per tick.
func New(cfg *config.Config, source *synth.Source, log zerolog.Logger) Model {
	state := newMeterState(cfg)
	return Model{
		source: source,
		log:    log,
		fps:    cfg.FPS,
		state:  state,
		bands:  source.Next(state.minDB),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.fps), tea.SetWindowTitle(m.state.title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a := m.keys.action(msg.String())
		switch a {
		case actionQuit:
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case actionHelp:
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.state.apply(a) {
			m.log.Debug().
				Float64("min_db", m.state.minDB).
				Bool("labels", m.state.showLabels).
				Bool("peak", m.state.highlightPeak).
				Bool("border", m.state.border).
				Bool("paused", m.state.paused).
				Msg("meter settings changed")
		}
		return m, nil

	case frameMsg:
		if !m.state.paused {
			m.bands = m.source.Next(m.state.minDB)
		}
		return m, tickCmd(m.fps)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.log.Debug().Int("width", msg.Width).Int("height", msg.Height).Msg("resized")
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = fallbackWidth, fallbackHeight
	}

	helpView := statusStyle.Render(m.help.View(m.keys))
	meterHeight := max(0, h-lipgloss.Height(helpView))

	buf, err := m.state.draw(m.bands, grid.NewRect(0, 0, w, meterHeight))
	if err != nil {
		return errorStyle.Render("Error: "+err.Error()) + "\n" + helpView
	}
	return buf.String() + "\n" + helpView
}
