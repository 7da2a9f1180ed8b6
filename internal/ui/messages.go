package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

func frameInterval(fps int) time.Duration {
	if fps < 1 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
