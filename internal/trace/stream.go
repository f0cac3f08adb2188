package trace

import (
	"bufio"
	"io"
	"sync"
)

// StreamTracer writes each event as soon as it is emitted.
type StreamTracer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	format Format
	level  Level
}

// NewStreamTracer creates a tracer writing to w.
func NewStreamTracer(w io.Writer, format Format, level Level) *StreamTracer {
	st := &StreamTracer{
		w:      bufio.NewWriter(w),
		format: format,
		level:  level,
	}
	if c, ok := w.(io.Closer); ok && !isStdStream(w) {
		st.closer = c
	}
	return st
}

// Emit writes ev; write errors are dropped.
func (st *StreamTracer) Emit(ev *Event) {
	if ev == nil {
		return
	}
	data, err := FormatEvent(ev, st.format)
	if err != nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	_, _ = st.w.Write(data)
	_ = st.w.WriteByte('\n')
	// stderr ждать не должен
	if st.closer == nil {
		_ = st.w.Flush()
	}
}

func (st *StreamTracer) Flush() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.w.Flush()
}

func (st *StreamTracer) Close() error {
	if err := st.Flush(); err != nil {
		return err
	}
	if st.closer != nil {
		return st.closer.Close()
	}
	return nil
}

func (st *StreamTracer) Level() Level  { return st.level }
func (st *StreamTracer) Enabled() bool { return st.level > LevelOff }
