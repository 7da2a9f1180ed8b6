package ui

import (
	"fmt"

	"github.com/olivier-w/rtameter/internal/config"
	"github.com/olivier-w/rtameter/internal/grid"
	"github.com/olivier-w/rtameter/internal/rta"
)

// meterState is everything the user can change at runtime. Both backends
// share it so the keys behave the same.
type meterState struct {
	minDB         float64
	showLabels    bool
	highlightPeak bool
	border        bool
	paused        bool
	title         string
}

func newMeterState(cfg *config.Config) meterState {
	return meterState{
		minDB:         config.ClampFloor(cfg.MinDB),
		showLabels:    cfg.ShowLabels,
		highlightPeak: cfg.HighlightPeak,
		border:        cfg.Border,
		title:         cfg.Title,
	}
}

// apply updates s for a and reports whether anything changed.
func (s *meterState) apply(a action) bool {
	switch a {
	case actionLabels:
		s.showLabels = !s.showLabels
	case actionPeak:
		s.highlightPeak = !s.highlightPeak
	case actionBorder:
		s.border = !s.border
	case actionPause:
		s.paused = !s.paused
	case actionRaiseFloor:
		s.minDB = config.ClampFloor(s.minDB + floorStep)
	case actionLowerFloor:
		s.minDB = config.ClampFloor(s.minDB - floorStep)
	default:
		return false
	}
	return true
}

func (s meterState) frameTitle() string {
	title := fmt.Sprintf("%s %sdB", s.title, rta.FormatDB(s.minDB))
	if s.paused {
		title += " paused"
	}
	return " " + title + " "
}

func (s meterState) meter(bands []rta.Band) rta.RTA {
	m := rta.New(bands, s.minDB).
		WithPeakLabels(s.showLabels).
		WithPeakHighlight(s.highlightPeak).
		WithLabelColor(labelColor)
	if s.border {
		f := grid.BorderedFrame(s.frameTitle())
		f.BorderColor = borderColor
		f.TitleColor = labelColor
		m = m.WithFrame(f)
	}
	return m
}

// draw renders one frame of bands into a fresh buffer covering area.
func (s meterState) draw(bands []rta.Band, area grid.Rect) (*grid.Buffer, error) {
	buf := grid.NewBuffer(area)
	if err := s.meter(bands).Render(area, buf); err != nil {
		return buf, fmt.Errorf("rendering meter: %w", err)
	}
	return buf, nil
}
