package player

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LineMsg is delivered when the delay for a line has elapsed.
type LineMsg struct {
	Player int64
	Index  int
}

// StartCmd takes the one-shot guard and schedules the first line. It
// returns nil if the player had already started.
func (p *Player) StartCmd() tea.Cmd {
	if !p.Start() {
		return nil
	}
	return p.Cmd()
}

// Cmd schedules the line at the cursor.
func (p *Player) Cmd() tea.Cmd {
	idx, delay, ok := p.pending()
	if !ok {
		return nil
	}
	id := p.id
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return LineMsg{Player: id, Index: idx}
	})
}

// Update consumes a LineMsg for this player and schedules the next line.
// Messages for other players, or for a line already appended, are ignored.
func (p *Player) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(LineMsg)
	if !ok || m.Player != p.id {
		return nil
	}
	idx, _, ok := p.pending()
	if !ok || idx != m.Index {
		return nil
	}
	if !p.Advance() {
		return nil
	}
	return p.Cmd()
}
