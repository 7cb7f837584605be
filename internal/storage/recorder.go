package storage

import (
	"sync"
	"time"

	"github.com/san-kum/nova/internal/transcript"
)

// Recorder collects appends from a player's OnAppend hook.
type Recorder struct {
	mu      sync.Mutex
	start   time.Time
	last    time.Time
	appends []Append
}

// NewRecorder measures the first gap from start.
func NewRecorder(start time.Time) *Recorder {
	return &Recorder{start: start, last: start}
}

func (r *Recorder) Observe(index int, line transcript.Line, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appends = append(r.appends, Append{
		Index:    index,
		DelayMs:  ms(line.Delay),
		GapMs:    ms(at.Sub(r.last)),
		OffsetMs: ms(at.Sub(r.start)),
	})
	r.last = at
}

func (r *Recorder) Appends() []Append {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Append(nil), r.appends...)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
