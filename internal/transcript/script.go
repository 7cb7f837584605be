package transcript

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Line kinds understood by stylers.
const (
	KindPlain   = ""
	KindPrompt  = "prompt"
	KindCommand = "command"
	KindSuccess = "success"
	KindInfo    = "info"
	KindMuted   = "muted"
	KindCursor  = "cursor"
)

// Line is one unit of scripted output. Delay is measured from the append of
// the previous line, not from the start of playback.
type Line struct {
	Delay   time.Duration
	Content string
}

// Sequence is an ordered, fixed transcript.
type Sequence []Line

// Schedule returns the offset of every append relative to playback start.
func (s Sequence) Schedule() []time.Duration {
	offsets := make([]time.Duration, len(s))
	var at time.Duration
	for i, l := range s {
		at += l.Delay
		offsets[i] = at
	}
	return offsets
}

// Total is the time from playback start to the last append.
func (s Sequence) Total() time.Duration {
	var total time.Duration
	for _, l := range s {
		total += l.Delay
	}
	return total
}

// Entry is the on-disk form of a line.
type Entry struct {
	DelayMs int    `yaml:"delay_ms"`
	Kind    string `yaml:"kind,omitempty"`
	Text    string `yaml:"text"`
}

// Script is a named list of entries.
type Script struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Lines       []Entry `yaml:"lines"`
}

// Styler turns a kind and its text into a renderable fragment.
type Styler func(kind, text string) string

// PlainStyler renders text unchanged.
func PlainStyler(kind, text string) string { return text }

func (s *Script) Validate() error {
	if len(s.Lines) == 0 {
		return ErrEmpty
	}
	for i, e := range s.Lines {
		if e.DelayMs < 0 {
			return &ScriptError{Index: i, Wrapped: ErrNegativeDelay}
		}
	}
	return nil
}

// Render produces the playback sequence. Text is passed to the styler as is.
func (s *Script) Render(styler Styler) Sequence {
	if styler == nil {
		styler = PlainStyler
	}
	seq := make(Sequence, len(s.Lines))
	for i, e := range s.Lines {
		seq[i] = Line{
			Delay:   time.Duration(e.DelayMs) * time.Millisecond,
			Content: styler(e.Kind, e.Text),
		}
	}
	return seq
}

// MaxDelayMs caps a single scaled delay.
const MaxDelayMs = math.MaxInt32

// Scaled returns a copy with every delay multiplied by factor. Results are
// clamped to [0, MaxDelayMs].
func (s *Script) Scaled(factor float64) *Script {
	out := &Script{Name: s.Name, Description: s.Description, Lines: make([]Entry, len(s.Lines))}
	for i, e := range s.Lines {
		e.DelayMs = scaleDelay(e.DelayMs, factor)
		out.Lines[i] = e
	}
	return out
}

func scaleDelay(ms int, factor float64) int {
	v := float64(ms) * factor
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= MaxDelayMs:
		return MaxDelayMs
	}
	return int(v)
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return &s, nil
}

func Save(path string, s *Script) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
