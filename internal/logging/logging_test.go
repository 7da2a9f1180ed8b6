package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closer, err := New("", "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %v", log.GetLevel())
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rta.log")
	log, closer, err := New(path, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Int("bands", 8).Msg("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "started") || !strings.Contains(out, "bands=8") {
		t.Fatalf("expected info line in log, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug line to be filtered, got %q", out)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWriterIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, zerolog.InfoLevel)
	logger.Warn().Msg("careful")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "careful") {
		t.Fatalf("expected message, got %q", buf.String())
	}
}
