// Package site renders the Nova landing page as a Bubble Tea program.
//
// The whole page lives in one scrolling viewport. Scrolling moves the
// viewport over the rendered rows, and visibility observers decide when the
// live terminal demo, the stat counters and the comparison bars start:
//
//	terminal demo     threshold 0.3, plays the transcript once
//	counters          threshold 0.5, count up once
//	comparison bars   threshold 0.5, fill when first seen
//
// # Key Bindings
//
//	j/k, arrows, PgUp/PgDn  scroll
//	1-5                     jump to a section
//	Tab                     focus the next code block
//	c                       copy the focused code block
//	r                       run the playground
//	q                       quit
package site

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/nova/internal/counter"
	"github.com/san-kum/nova/internal/player"
	"github.com/san-kum/nova/internal/transcript"
	"github.com/san-kum/nova/internal/ui"
	"github.com/san-kum/nova/internal/visibility"
	"go.uber.org/zap"
)

const (
	maxWidth       = 100
	terminalHeight = 12
	counterPrefix  = "counter-"
)

type Options struct {
	Styles            ui.Styles
	Script            transcript.Sequence
	TerminalThreshold float64
	CounterThreshold  float64
	CounterDuration   time.Duration
	CounterFrame      time.Duration
	NavbarOffset      int
	CompileDelay      time.Duration
	CopyFeedback      time.Duration
	Clipboard         func(string) error
	Log               *zap.Logger
}

type playgroundState int

const (
	playgroundIdle playgroundState = iota
	playgroundCompiling
	playgroundDone
)

type copyResetMsg struct{ gen int }

type compiledMsg struct{ gen int }

type Model struct {
	opts   Options
	styles ui.Styles
	log    *zap.Logger

	width, height int
	page          viewport.Model
	spans         map[string]visibility.Span

	terminal *terminalRegion
	player   *player.Player
	counters []*counter.Counter

	terminalObs *visibility.Observer
	counterObs  *visibility.Observer
	barsObs     *visibility.Observer
	barsFilled  bool

	focus   int
	copied  int
	copyGen int
	md      *docRenderer

	playground    playgroundState
	playgroundGen int

	status string
}

func New(opts Options) (*Model, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.CounterDuration <= 0 {
		opts.CounterDuration = counter.DefaultDuration
	}
	if opts.CounterFrame <= 0 {
		opts.CounterFrame = counter.DefaultFrame
	}

	m := &Model{
		opts:     opts,
		styles:   opts.Styles,
		log:      opts.Log,
		width:    80,
		height:   24,
		page:     viewport.New(80, 22),
		terminal: newTerminalRegion(74, terminalHeight),
		copied:   -1,
		md:       newDocRenderer(),
	}

	p, err := player.New(opts.Script, m.terminal, player.WithLogger(opts.Log))
	if err != nil {
		return nil, err
	}
	m.player = p

	for _, s := range stats {
		c := counter.New(s.label, s.target, s.suffix)
		c.Duration = opts.CounterDuration
		c.Frame = opts.CounterFrame
		m.counters = append(m.counters, c)
	}

	m.terminalObs = visibility.NewObserver(opts.TerminalThreshold, nil)
	m.counterObs = visibility.NewObserver(opts.CounterThreshold, nil)
	m.barsObs = visibility.NewObserver(opts.CounterThreshold, nil)

	m.relayout()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if cmd, quit := m.handleKey(msg); quit {
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		cmds = append(cmds, cmd)

	case player.LineMsg:
		cmds = append(cmds, m.player.Update(msg))
		m.relayout()

	case counter.FrameMsg:
		for _, c := range m.counters {
			if cmd := c.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.relayout()

	case copyResetMsg:
		if msg.gen == m.copyGen {
			m.copied = -1
			m.relayout()
		}

	case compiledMsg:
		if msg.gen == m.playgroundGen && m.playground == playgroundCompiling {
			m.playground = playgroundDone
			m.relayout()
		}
	}

	cmds = append(cmds, m.checkVisibility())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return nil, true
	case "tab":
		m.focus = (m.focus + 1) % len(docs)
		m.relayout()
		return nil, false
	case "shift+tab":
		m.focus = (m.focus + len(docs) - 1) % len(docs)
		m.relayout()
		return nil, false
	case "c":
		return m.copyFocused(), false
	case "r":
		return m.runPlayground(), false
	}

	for _, s := range navSections {
		if msg.String() == s.key {
			m.jumpTo(s.id)
			return nil, false
		}
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return cmd, false
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.page.Width = width
	m.page.Height = max(height-2, 1)
	m.terminal.Resize(m.contentWidth() - 4)
	m.relayout()
}

func (m *Model) contentWidth() int {
	return max(min(m.width, maxWidth)-2, 20)
}

// relayout renders the page and re-registers every observed span.
func (m *Model) relayout() {
	content, spans := m.render()
	m.spans = spans
	m.page.SetContent(content)

	if s, ok := spans[sectionTerminal]; ok {
		m.terminalObs.Observe(sectionTerminal, s)
	}
	if s, ok := spans[sectionStats]; ok {
		for i := range m.counters {
			m.counterObs.Observe(counterPrefix+strconv.Itoa(i), s)
		}
	}
	if s, ok := spans[sectionCompare]; ok {
		m.barsObs.Observe(sectionCompare, s)
	}
}

func (m *Model) visibleSpan() visibility.Span {
	return visibility.Span{Top: m.page.YOffset, Height: m.page.Height}
}

func (m *Model) checkVisibility() tea.Cmd {
	vp := m.visibleSpan()
	var cmds []tea.Cmd

	for _, e := range m.terminalObs.Check(vp) {
		if !e.Intersecting {
			continue
		}
		if cmd := m.player.StartCmd(); cmd != nil {
			m.log.Info("terminal demo started", zap.Float64("ratio", e.Ratio))
			cmds = append(cmds, cmd)
		}
	}

	for _, e := range m.counterObs.Check(vp) {
		if !e.Intersecting {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(e.ID, counterPrefix))
		if err != nil || idx >= len(m.counters) {
			continue
		}
		if cmd := m.counters[idx].Start(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	for _, e := range m.barsObs.Check(vp) {
		if e.Intersecting && !m.barsFilled {
			m.barsFilled = true
			m.relayout()
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) jumpTo(id string) {
	if s, ok := m.spans[id]; ok {
		m.page.SetYOffset(s.Top)
	}
}

func (m *Model) copyFocused() tea.Cmd {
	blk := docs[m.focus]
	if err := m.opts.Clipboard(blk.code); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.log.Warn("clipboard write failed", zap.Error(err))
		return nil
	}
	m.copyGen++
	m.copied = m.focus
	m.status = fmt.Sprintf("copied %q", blk.title)
	m.relayout()

	gen := m.copyGen
	return tea.Tick(m.opts.CopyFeedback, func(time.Time) tea.Msg { return copyResetMsg{gen: gen} })
}

func (m *Model) runPlayground() tea.Cmd {
	m.playgroundGen++
	m.playground = playgroundCompiling
	m.relayout()

	gen := m.playgroundGen
	return tea.Tick(m.opts.CompileDelay, func(time.Time) tea.Msg { return compiledMsg{gen: gen} })
}

func (m Model) View() string {
	return m.renderNavbar() + "\n" + m.page.View() + "\n" + m.renderStatus()
}

// Player exposes the terminal demo's player.
func (m *Model) Player() *player.Player { return m.player }

// Run starts the page on the alternate screen.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(*m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
