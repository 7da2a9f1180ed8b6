package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/olivier-w/rtameter/internal/config"
	"github.com/olivier-w/rtameter/internal/grid"
	"github.com/olivier-w/rtameter/internal/synth"
	"github.com/rs/zerolog"
)

// RunScreen drives the meter on a raw tcell screen, without Bubbletea,
// until a quit key is pressed or ctx is done.
func RunScreen(ctx context.Context, cfg *config.Config, source *synth.Source, log zerolog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()

	s.HideCursor()
	return runScreen(ctx, s, cfg, source, log)
}

func runScreen(ctx context.Context, s tcell.Screen, cfg *config.Config, source *synth.Source, log zerolog.Logger) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval(cfg.FPS))
	defer ticker.Stop()

	keys := defaultKeyMap()
	state := newMeterState(cfg)
	bands := source.Next(state.minDB)

	var lastErr error
	draw := func() {
		w, h := s.Size()
		buf, err := state.draw(bands, grid.NewRect(0, 0, w, h))
		if err != nil && (lastErr == nil || err.Error() != lastErr.Error()) {
			log.Error().Err(err).Msg("draw failed")
		}
		lastErr = err
		s.Clear()
		buf.Draw(s)
		s.Show()
	}

	for {
		draw()

		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			if !state.paused {
				bands = source.Next(state.minDB)
			}

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				log.Debug().Int("width", w).Int("height", h).Msg("resized")
				s.Sync()
			case *tcell.EventKey:
				a := keys.action(keyName(ev))
				if a == actionQuit {
					return nil
				}
				if state.apply(a) {
					log.Debug().Float64("min_db", state.minDB).Msg("meter settings changed")
				}
			}
		}
	}
}

// keyName spells a tcell key event the way Bubbletea names keys.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	}
	return ""
}
