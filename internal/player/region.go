package player

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// WriterRegion appends each line to w. The terminal scrolls on its own.
type WriterRegion struct {
	w   io.Writer
	err error
}

func NewWriterRegion(w io.Writer) *WriterRegion {
	return &WriterRegion{w: w}
}

func (r *WriterRegion) Append(content string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, content)
}

func (r *WriterRegion) ScrollToBottom() {}

// Err returns the first write error, if any.
func (r *WriterRegion) Err() error { return r.err }

// BufferRegion keeps lines in memory.
type BufferRegion struct {
	mu      sync.Mutex
	lines   []string
	scrolls int
}

func (r *BufferRegion) Append(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, content)
}

func (r *BufferRegion) ScrollToBottom() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scrolls++
}

func (r *BufferRegion) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func (r *BufferRegion) Scrolls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scrolls
}

func (r *BufferRegion) String() string {
	return strings.Join(r.Lines(), "\n")
}
