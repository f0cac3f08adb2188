// Package token defines lexical token kinds and trivia for dice notation.
// Invariants:
//   - Token.Text is a slice of the normalised input (no copies beyond string conversion).
//   - Token.Span matches Text exactly (Start..End).
//   - A dice token carries both halves ("3d6", "d20", "4d%"); the parser splits it.
//   - Whitespace is leading Trivia and never appears in the main token stream.
package token
