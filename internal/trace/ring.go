package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory.
type RingTracer struct {
	mu    sync.Mutex
	buf   []*Event
	next  int
	full  bool
	level Level
}

// NewRingTracer creates a ring of the given capacity.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = 1024
	}
	return &RingTracer{buf: make([]*Event, size), level: level}
}

func (rt *RingTracer) Emit(ev *Event) {
	if ev == nil {
		return
	}
	rt.mu.Lock()
	rt.buf[rt.next] = ev
	rt.next++
	if rt.next == len(rt.buf) {
		rt.next = 0
		rt.full = true
	}
	rt.mu.Unlock()
}

// Snapshot returns stored events, oldest first.
func (rt *RingTracer) Snapshot() []*Event {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.full {
		out := make([]*Event, rt.next)
		copy(out, rt.buf[:rt.next])
		return out
	}
	out := make([]*Event, 0, len(rt.buf))
	out = append(out, rt.buf[rt.next:]...)
	out = append(out, rt.buf[:rt.next]...)
	return out
}

// Dump writes the snapshot to w.
func (rt *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range rt.Snapshot() {
		data, err := FormatEvent(ev, format)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func (rt *RingTracer) Flush() error  { return nil }
func (rt *RingTracer) Close() error  { return nil }
func (rt *RingTracer) Level() Level  { return rt.level }
func (rt *RingTracer) Enabled() bool { return rt.level > LevelOff }
