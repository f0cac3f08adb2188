package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"diceroll/internal/diag"
	"diceroll/internal/source"
)

type palette struct {
	err, warn, info, code, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		code:  color.New(color.Faint),
		caret: color.New(color.FgRed, color.Bold),
		note:  color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждого diag печатает:
// <name>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку выражения с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fileOf(fs, d.Primary)
		sev := p.severity(d.Severity)

		if file != nil {
			pos := file.Position(d.Primary.Start)
			fmt.Fprintf(w, "%s:%d:%d: ", file.Name, pos.Line, pos.Col)
		}
		fmt.Fprintf(w, "%s %s: %s\n",
			sev.Sprint(strings.ToUpper(d.Severity.String())),
			p.code.Sprint(d.Code.ID()),
			d.Message)

		if opts.ShowSource && file != nil {
			writeSnippet(w, file, d.Primary, p.caret)
		}

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fileOf(fs, n.Span)
			if nf == nil {
				fmt.Fprintf(w, "  %s: %s\n", p.note.Sprint("note"), n.Msg)
				continue
			}
			pos := nf.Position(n.Span.Start)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", p.note.Sprint("note"), nf.Name, pos.Line, pos.Col, n.Msg)
			if opts.ShowSource {
				writeSnippet(w, nf, n.Span, p.note)
			}
		}
	}
}

// writeSnippet prints the line holding sp and an underline below it.
// Widths go through runewidth so wide characters keep the caret aligned.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, c *color.Color) {
	lineStart, lineEnd := f.LineBounds(sp.Start)
	line := f.Text(source.Span{Start: lineStart, End: lineEnd})
	prefix := f.Text(source.Span{Start: lineStart, End: sp.Start})

	end := min(sp.End, lineEnd)
	width := runewidth.StringWidth(f.Text(source.Span{Start: sp.Start, End: end}))
	width = max(width, 1)

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n",
		strings.Repeat(" ", runewidth.StringWidth(prefix)),
		c.Sprint("^"+strings.Repeat("~", width-1)))
}

func fileOf(fs *source.FileSet, sp source.Span) *source.File {
	if fs == nil || sp.File == 0 || int(sp.File) > fs.Len() {
		return nil
	}
	return fs.Get(sp.File)
}
