package site

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// terminalRegion is the scrolling box the transcript plays into.
type terminalRegion struct {
	vp    viewport.Model
	lines []string
}

func newTerminalRegion(width, height int) *terminalRegion {
	return &terminalRegion{vp: viewport.New(width, height)}
}

func (r *terminalRegion) Append(content string) {
	r.lines = append(r.lines, content)
	r.vp.SetContent(strings.Join(r.lines, "\n"))
}

func (r *terminalRegion) ScrollToBottom() {
	r.vp.GotoBottom()
}

func (r *terminalRegion) Resize(width int) {
	r.vp.Width = width
	r.vp.SetContent(strings.Join(r.lines, "\n"))
	r.vp.GotoBottom()
}

func (r *terminalRegion) Lines() []string {
	return r.lines
}

func (r *terminalRegion) View() string {
	return r.vp.View()
}
