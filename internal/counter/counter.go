// Package counter animates a number from zero up to a target.
package counter

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultDuration = 2 * time.Second
	DefaultFrame    = 16 * time.Millisecond
)

var lastID atomic.Int64

// FrameMsg advances the counter it names by one frame.
type FrameMsg struct {
	Counter int64
}

type Counter struct {
	id       int64
	Label    string
	Target   int
	Suffix   string
	Duration time.Duration
	Frame    time.Duration

	started bool
	frame   int
	value   int
}

func New(label string, target int, suffix string) *Counter {
	return &Counter{
		id:       lastID.Add(1),
		Label:    label,
		Target:   target,
		Suffix:   suffix,
		Duration: DefaultDuration,
		Frame:    DefaultFrame,
	}
}

func (c *Counter) ID() int64 { return c.id }

func (c *Counter) step() float64 {
	frames := float64(c.Duration) / float64(c.Frame)
	if frames < 1 {
		frames = 1
	}
	return float64(c.Target) / frames
}

// ValueAt is the displayed value after n frames.
func (c *Counter) ValueAt(n int) int {
	current := c.step() * float64(n)
	if current >= float64(c.Target) {
		return c.Target
	}
	return int(math.Floor(current))
}

func (c *Counter) Value() int    { return c.value }
func (c *Counter) Started() bool { return c.started }
func (c *Counter) Done() bool    { return c.started && c.value >= c.Target }

// Start begins counting. Only the first call does anything.
func (c *Counter) Start() tea.Cmd {
	if c.started {
		return nil
	}
	c.started = true
	if c.Target <= 0 {
		c.value = c.Target
		return nil
	}
	return c.tick()
}

func (c *Counter) tick() tea.Cmd {
	id := c.id
	return tea.Tick(c.Frame, func(time.Time) tea.Msg { return FrameMsg{Counter: id} })
}

func (c *Counter) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(FrameMsg)
	if !ok || m.Counter != c.id || !c.started || c.Done() {
		return nil
	}
	c.frame++
	c.value = c.ValueAt(c.frame)
	if c.Done() {
		return nil
	}
	return c.tick()
}
