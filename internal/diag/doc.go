// Package diag defines the diagnostic model shared by the lexer, parser,
// validator and evaluator.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – short human text, e.g. "expected number, but found '/'".
//   - Primary – the byte span of the offending input.
//   - Notes – optional secondary spans.
//
// # Emitting diagnostics
//
// Phases report through a Reporter so emission is decoupled from storage.
// BagReporter collects into a Bag, which supports sorting and deduplication.
// Rendering lives in internal/diagfmt.
package diag
