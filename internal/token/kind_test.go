package token

import "testing"

func TestKindClasses(t *testing.T) {
	for k := OpKeep; k <= OpMax; k++ {
		if !k.IsSetOp() || k.IsSelector() {
			t.Errorf("%s: expected set op only", k)
		}
	}
	for k := SelHighest; k <= SelLess; k++ {
		if !k.IsSelector() || k.IsSetOp() {
			t.Errorf("%s: expected selector only", k)
		}
	}
	for _, k := range []Kind{Number, Dice, Plus, Comma, EOF} {
		if k.IsSetOp() || k.IsSelector() {
			t.Errorf("%s: classified as set op or selector", k)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Invalid; k <= SelLess; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
		if k != Invalid && k.Describe() == "invalid token" {
			t.Errorf("kind %s has no description", k)
		}
	}
}

func TestTokenIsLiteral(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{Number, true},
		{Dice, true},
		{Plus, false},
		{OpKeep, false},
	}
	for _, tt := range tests {
		if got := (Token{Kind: tt.kind}).IsLiteral(); got != tt.want {
			t.Errorf("%s.IsLiteral() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
