package trace

import "errors"

// MultiTracer fans out events to multiple tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer creates a tracer that forwards to all given tracers.
func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

func (mt *MultiTracer) Emit(ev *Event) {
	for _, t := range mt.tracers {
		t.Emit(ev)
	}
}

func (mt *MultiTracer) Flush() error {
	var errs []error
	for _, t := range mt.tracers {
		if err := t.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (mt *MultiTracer) Close() error {
	var errs []error
	for _, t := range mt.tracers {
		if err := t.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (mt *MultiTracer) Level() Level  { return mt.level }
func (mt *MultiTracer) Enabled() bool { return mt.level > LevelOff }

// Ring returns the first ring tracer among the children, if any.
func (mt *MultiTracer) Ring() *RingTracer {
	for _, t := range mt.tracers {
		if r, ok := t.(*RingTracer); ok {
			return r
		}
	}
	return nil
}
