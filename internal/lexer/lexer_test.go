package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"diceroll/internal/diag"
	"diceroll/internal/lexer"
	"diceroll/internal/source"
	"diceroll/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<test>", input))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.messages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestSingleTokens(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"123456", token.Number},
		{"8d6", token.Dice},
		{"d20", token.Dice},
		{"3d%", token.Dice},
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"%", token.Percent},
		{"(", token.LParen},
		{")", token.RParen},
		{",", token.Comma},
		{"k", token.OpKeep},
		{"p", token.OpDrop},
		{"rr", token.OpReroll},
		{"ro", token.OpRerollOnce},
		{"ra", token.OpRerollAdd},
		{"e", token.OpExplode},
		{"mi", token.OpMin},
		{"ma", token.OpMax},
		{"h", token.SelHighest},
		{"l", token.SelLowest},
		{">", token.SelGreater},
		{"<", token.SelLess},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind || tok.Text != tt.input {
				t.Errorf("got %v(%q), want %v(%q)", tok.Kind, tok.Text, tt.kind, tt.input)
			}
			if len(rep.diagnostics) != 0 {
				t.Errorf("unexpected diagnostics: %v", rep.messages())
			}
			if next := lx.Next(); next.Kind != token.EOF {
				t.Errorf("trailing token %v", next.Kind)
			}
		})
	}
}

func TestExpressions(t *testing.T) {
	expectTokens(t, "2d20kh1 + 3d6ro<2 - 5", []token.Kind{
		token.Dice, token.OpKeep, token.SelHighest, token.Number,
		token.Plus,
		token.Dice, token.OpRerollOnce, token.SelLess, token.Number,
		token.Minus, token.Number,
	})
	expectTokens(t, "(100, 2d100)e100", []token.Kind{
		token.LParen, token.Number, token.Comma, token.Dice, token.RParen,
		token.OpExplode, token.Number,
	})
	expectTokens(t, "4d6rrmi2ma5", []token.Kind{
		token.Dice, token.OpReroll, token.OpMin, token.Number, token.OpMax, token.Number,
	})
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("  1d20\t-\n2")
	toks := lx.All()
	if len(toks[0].Leading) != 1 || toks[0].Leading[0].Kind != token.TriviaSpace {
		t.Errorf("first token trivia = %+v", toks[0].Leading)
	}
	if toks[0].Span != (source.Span{File: 1, Start: 2, End: 6}) {
		t.Errorf("dice span = %v", toks[0].Span)
	}
	if len(toks[2].Leading) != 1 || toks[2].Leading[0].Kind != token.TriviaNewline {
		t.Errorf("number trivia = %+v", toks[2].Leading)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("1 + 2")
	if p := lx.Peek(); p.Kind != token.Number {
		t.Fatalf("Peek = %v", p.Kind)
	}
	if p := lx.Peek(); p.Kind != token.Number {
		t.Fatalf("second Peek = %v", p.Kind)
	}
	if n := lx.Next(); n.Kind != token.Number || n.Text != "1" {
		t.Fatalf("Next = %v(%q)", n.Kind, n.Text)
	}
	if n := lx.Next(); n.Kind != token.Plus {
		t.Fatalf("Next = %v", n.Kind)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		text  string
	}{
		{"3d0", diag.LexBadDice, "3d0"},
		{"3d", diag.LexBadDice, "3d"},
		{"x", diag.LexUnknownChar, "x"},
		{"!", diag.LexUnknownChar, "!"},
		{"é", diag.LexUnknownChar, "é"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Invalid || tok.Text != tt.text {
				t.Errorf("got %v(%q)", tok.Kind, tok.Text)
			}
			if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != tt.code {
				t.Fatalf("diagnostics = %v", rep.messages())
			}
			if lx.Next().Kind != token.EOF {
				t.Error("lexer did not reach EOF after an invalid token")
			}
		})
	}
}

func TestFullwidthInput(t *testing.T) {
	expectTokens(t, "２ｄ６＋１", []token.Kind{token.Dice, token.Plus, token.Number})
}
