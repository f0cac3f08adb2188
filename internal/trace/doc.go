// Package trace provides structured event tracing for the roll pipeline.
//
// # Usage
//
//	diceroll roll --trace=- --trace-level=debug '4d6kh3'
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (stderr or a file)
//   - RingTracer: keeps the last N events in memory, dumped when a roll fails
//   - MultiTracer: fans out to several tracers
//
// # Scopes
//
//   - ScopeDriver: one CLI invocation
//   - ScopePass: lex, parse, validate, lower, resolve, total
//   - ScopeExpr: one expression of a batch
//   - ScopeNode: one applied set operation on one dice or set node
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lower", parentID)
//	defer span.End("")
package trace
