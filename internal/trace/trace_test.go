package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeExpr, false},
		{LevelDetail, ScopeExpr, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("DEBUG"); err != nil || l != LevelDebug {
		t.Fatalf("ParseLevel(DEBUG) = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, FormatText, LevelDebug)

	root := Begin(tr, ScopeDriver, "roll", 0)
	child := Begin(tr, ScopePass, "lower", root.ID())
	child.WithExtra("nodes", "7").End("")
	Point(tr, ScopeNode, "setop", child.ID(), "kh1", nil)
	root.End("ok")
	if err := tr.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "end") || !strings.Contains(lines[2], "nodes=7") {
		t.Errorf("unexpected end line: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "kh1") {
		t.Errorf("unexpected point line: %q", lines[3])
	}
}

func TestStreamTracerFiltersScope(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, FormatText, LevelPhase)
	Point(tr, ScopeNode, "setop", 0, "", nil)
	s := Begin(tr, ScopeExpr, "expr", 0)
	s.End("")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, FormatNDJSON, LevelDebug)
	Begin(tr, ScopePass, "parse", 0).End("3 nodes")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		if m["name"] != "parse" {
			t.Errorf("name = %v", m["name"])
		}
	}
}

func TestRingTracerWraps(t *testing.T) {
	rt := NewRingTracer(3, LevelDebug)
	for i := 0; i < 5; i++ {
		rt.Emit(&Event{Seq: uint64(i)})
	}
	snap := rt.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	for i, ev := range snap {
		if ev.Seq != uint64(i+2) {
			t.Errorf("snap[%d].Seq = %d, want %d", i, ev.Seq, i+2)
		}
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop from empty context")
	}
	rt := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), rt)
	if FromContext(ctx) != Tracer(rt) {
		t.Fatal("tracer not propagated")
	}
	s := Begin(rt, ScopePass, "x", 0)
	ctx = WithSpan(ctx, s)
	if CurrentSpan(ctx) != s.ID() {
		t.Fatalf("CurrentSpan = %d, want %d", CurrentSpan(ctx), s.ID())
	}
}

func TestNewLevelErrorIsRing(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeStream})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.(*RingTracer); !ok {
		t.Fatalf("got %T, want *RingTracer", tr)
	}
}
