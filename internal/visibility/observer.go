// Package visibility reports when page regions scroll into view.
//
// Regions and the viewport are row spans of a rendered page. An [Observer]
// is edge-triggered: its callback fires when a target starts or stops
// intersecting, never while it stays in the same state.
package visibility

import (
	"sort"
	"sync"
)

// Span is a range of rows starting at Top.
type Span struct {
	Top    int
	Height int
}

func (s Span) Bottom() int { return s.Top + s.Height }

// Ratio is the fraction of target rows that lie inside the viewport.
func Ratio(target, viewport Span) float64 {
	if viewport.Height <= 0 {
		return 0
	}
	if target.Height <= 0 {
		if target.Top >= viewport.Top && target.Top <= viewport.Bottom() {
			return 1
		}
		return 0
	}
	top := max(target.Top, viewport.Top)
	bottom := min(target.Bottom(), viewport.Bottom())
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(target.Height)
}

type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

type Callback func(Entry)

type target struct {
	span         Span
	intersecting bool
}

type Observer struct {
	threshold float64
	fn        Callback

	mu      sync.Mutex
	targets map[string]*target
}

func NewObserver(threshold float64, fn Callback) *Observer {
	return &Observer{
		threshold: threshold,
		fn:        fn,
		targets:   make(map[string]*target),
	}
}

func (o *Observer) Threshold() float64 { return o.threshold }

// Observe registers a target or moves an existing one. A moved target keeps
// its intersecting state until the next Check.
func (o *Observer) Observe(id string, span Span) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.targets[id]; ok {
		t.span = span
		return
	}
	o.targets[id] = &target{span: span}
}

func (o *Observer) Unobserve(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.targets, id)
}

// Check compares every target against the viewport and reports the ones
// whose intersecting state changed, in id order.
func (o *Observer) Check(viewport Span) []Entry {
	o.mu.Lock()
	ids := make([]string, 0, len(o.targets))
	for id := range o.targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var changed []Entry
	for _, id := range ids {
		t := o.targets[id]
		r := Ratio(t.span, viewport)
		in := r > 0 && r >= o.threshold
		if in == t.intersecting {
			continue
		}
		t.intersecting = in
		changed = append(changed, Entry{ID: id, Ratio: r, Intersecting: in})
	}
	o.mu.Unlock()

	if o.fn != nil {
		for _, e := range changed {
			o.fn(e)
		}
	}
	return changed
}
