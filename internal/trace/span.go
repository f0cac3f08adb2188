package trace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var (
	globalSeq    atomic.Uint64
	globalSpanID atomic.Uint64
)

// NextSeq returns the next global sequence number.
func NextSeq() uint64 {
	return globalSeq.Add(1)
}

// NextSpanID returns the next unique span ID.
func NextSpanID() uint64 {
	return globalSpanID.Add(1)
}

// getGoroutineID extracts goroutine ID from runtime stack.
// Only used for debug output.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 123 [running]:..."
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Span represents an active tracing span.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	start    time.Time
	gid      uint64
	extra    map[string]string
}

// Begin starts a new span.
// Returns a no-op span if the tracer is disabled or the scope is filtered out.
func Begin(t Tracer, scope Scope, name string, parentID uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{tracer: Nop}
	}

	s := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parentID,
		scope:    scope,
		name:     name,
		start:    time.Now(),
		gid:      getGoroutineID(),
	}

	t.Emit(&Event{
		Time:     s.start,
		Seq:      NextSeq(),
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parentID,
		GID:      s.gid,
		Name:     name,
	})

	return s
}

// End finishes the span and emits the end event.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() {
		return 0
	}

	elapsed := time.Since(s.start)
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		GID:      s.gid,
		Name:     s.name,
		Detail:   detail,
		Extra:    s.extra,
	})
	return elapsed
}

// WithExtra adds extra metadata to the span.
// The metadata will be included in the End event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID (useful for creating child spans).
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits an instant event under parentID.
func Point(t Tracer, scope Scope, name string, parentID uint64, detail string, extra map[string]string) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parentID,
		GID:      getGoroutineID(),
		Name:     name,
		Detail:   detail,
		Extra:    extra,
	})
}
