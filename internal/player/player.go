package player

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/nova/internal/transcript"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Playing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Region is the display surface a player appends to. It is owned by the
// caller, not the player.
type Region interface {
	Append(content string)
	ScrollToBottom()
}

// AppendFunc observes every append. It runs after the region was updated.
type AppendFunc func(index int, line transcript.Line, at time.Time)

type Option func(*Player)

func WithLogger(l *zap.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

func WithOnAppend(fn AppendFunc) Option {
	return func(p *Player) { p.onAppend = fn }
}

var lastID atomic.Int64

type Player struct {
	id       int64
	seq      transcript.Sequence
	region   Region
	log      *zap.Logger
	onAppend AppendFunc
	done     chan struct{}

	mu     sync.Mutex
	state  State
	cursor int
}

func New(seq transcript.Sequence, region Region, opts ...Option) (*Player, error) {
	if region == nil {
		return nil, ErrNoRegion
	}
	p := &Player{
		id:     lastID.Add(1),
		seq:    seq,
		region: region,
		log:    zap.NewNop(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(zap.Int64("player", p.id))
	return p, nil
}

func (p *Player) ID() int64 { return p.id }

func (p *Player) Len() int { return len(p.seq) }

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Started reports whether the one-shot guard has been taken.
func (p *Player) Started() bool {
	return p.State() != Idle
}

// Start moves the player from Idle to Playing. It returns false, and
// changes nothing, for every call after the first.
func (p *Player) Start() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Idle {
		p.log.Debug("start ignored", zap.Stringer("state", p.state))
		return false
	}
	p.state = Playing
	if len(p.seq) == 0 {
		p.finishLocked()
	}
	p.log.Debug("playback started", zap.Int("lines", len(p.seq)))
	return true
}

// Next returns the delay before the line at the cursor.
func (p *Player) Next() (time.Duration, bool) {
	_, delay, ok := p.pending()
	return delay, ok
}

func (p *Player) pending() (int, time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		return 0, 0, false
	}
	return p.cursor, p.seq[p.cursor].Delay, true
}

// Advance appends the line at the cursor and scrolls the region to the
// bottom. It reports whether more lines remain.
func (p *Player) Advance() bool {
	p.mu.Lock()
	if p.state != Playing {
		p.mu.Unlock()
		return false
	}

	idx := p.cursor
	line := p.seq[idx]
	p.region.Append(line.Content)
	p.region.ScrollToBottom()
	at := time.Now()

	p.cursor++
	if p.cursor == len(p.seq) {
		p.finishLocked()
	}
	more := p.state == Playing
	onAppend := p.onAppend
	p.mu.Unlock()

	if onAppend != nil {
		onAppend(idx, line, at)
	}
	return more
}

func (p *Player) finishLocked() {
	p.state = Done
	close(p.done)
	p.log.Debug("playback done", zap.Int("lines", len(p.seq)))
}

// Done is closed once the last line was appended.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

// Play starts playback and blocks until the last line was appended or ctx
// is canceled.
func (p *Player) Play(ctx context.Context) error {
	if !p.Start() {
		return ErrAlreadyStarted
	}
	return p.run(ctx)
}

// Trigger starts playback on a new goroutine. Only the first call starts
// anything; later calls return false.
func (p *Player) Trigger(ctx context.Context) bool {
	if !p.Start() {
		return false
	}
	go func() {
		if err := p.run(ctx); err != nil {
			p.log.Debug("playback stopped", zap.Error(err), zap.Int("cursor", p.Cursor()))
		}
	}()
	return true
}

func (p *Player) run(ctx context.Context) error {
	for {
		delay, ok := p.Next()
		if !ok {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		p.Advance()
	}
}
