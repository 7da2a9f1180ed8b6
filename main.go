package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/rtameter/internal/config"
	"github.com/olivier-w/rtameter/internal/logging"
	"github.com/olivier-w/rtameter/internal/synth"
	"github.com/olivier-w/rtameter/internal/ui"
	"github.com/spf13/pflag"
)

func main() {
	fs := config.NewFlagSet(os.Args[0])
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if dump, _ := fs.GetBool("dump-config"); dump {
		if err := cfg.Dump(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().
		Int("bands", cfg.Bands).
		Float64("min_db", cfg.MinDB).
		Int("fps", cfg.FPS).
		Str("backend", cfg.Backend).
		Int64("seed", cfg.Seed).
		Msg("starting")

	source := synth.New(cfg.Bands, cfg.FPS, cfg.Seed)

	switch cfg.Backend {
	case config.BackendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = ui.RunScreen(ctx, cfg, source, log)
	default:
		program := tea.NewProgram(ui.New(cfg, source, log), tea.WithAltScreen())
		_, err = program.Run()
	}
	if err != nil {
		log.Error().Err(err).Msg("backend exited")
		return err
	}
	log.Info().Msg("done")
	return nil
}
