// Package tui provides the Bubble Tea integration for the circuit board.
// It handles the terminal UI loop, mouse drags, key bindings and the level
// picker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line message stays visible.
const statusTTL = 3 * time.Second

// ClearStatusMsg is sent when a status message expires. Seq identifies the
// message it clears, so a newer message is never cleared early.
type ClearStatusMsg struct {
	Seq int
}

// clearStatusCmd returns a command that expires status message seq after d.
func clearStatusCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
