package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 0, End: 2}, Span{File: 1, Start: 5, End: 7}, Span{File: 1, Start: 0, End: 7}},
		{"nested", Span{File: 1, Start: 0, End: 10}, Span{File: 1, Start: 3, End: 4}, Span{File: 1, Start: 0, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 3}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpanString(t *testing.T) {
	sp := Span{File: 1, Start: 13, End: 14}
	if got := sp.String(); got != "13..14" {
		t.Errorf("String() = %q, want %q", got, "13..14")
	}
	if sp.Len() != 1 || sp.Empty() {
		t.Errorf("unexpected Len/Empty for %v", sp)
	}
	if !sp.Contains(13) || sp.Contains(14) {
		t.Errorf("Contains is not half-open for %v", sp)
	}
}

func TestFileSetNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		flags FileFlags
	}{
		{"ascii", "2d6+1", "2d6+1", FileVirtual},
		{"fullwidth", "２ｄ６＋１", "2d6+1", FileVirtual | FileNormalized},
		{"bom", "\xEF\xBB\xBFd20", "d20", FileVirtual | FileHadBOM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			id := fs.AddVirtual("<arg>", tt.in)
			f := fs.Get(id)
			if string(f.Content) != tt.want {
				t.Errorf("Content = %q, want %q", f.Content, tt.want)
			}
			if f.Flags != tt.flags {
				t.Errorf("Flags = %b, want %b", f.Flags, tt.flags)
			}
			if string(f.Original) != tt.in {
				t.Errorf("Original = %q, want %q", f.Original, tt.in)
			}
		})
	}
}

func TestFileText(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("<arg>", "1d20 - 2"))
	if got := f.Text(Span{File: f.ID, Start: 0, End: 4}); got != "1d20" {
		t.Errorf("Text = %q", got)
	}
	if got := f.Text(Span{File: f.ID, Start: 7, End: 99}); got != "2" {
		t.Errorf("clamped Text = %q", got)
	}
}
