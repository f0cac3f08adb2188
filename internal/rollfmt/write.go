package rollfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"diceroll/internal/hir"
)

// Write renders entries in the chosen format.
func Write(w io.Writer, entries []Entry, f Format, opts Options) error {
	switch f {
	case FormatPretty:
		return writePretty(w, entries, opts)
	case FormatTree:
		return writeTree(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots(entries))
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(snapshots(entries))
	}
	return fmt.Errorf("unsupported format %s", f)
}

func snapshots(entries []Entry) []Snapshot {
	out := make([]Snapshot, len(entries))
	for i, e := range entries {
		out[i] = Snap(e)
	}
	return out
}

// Line renders one entry as "breakdown = total", or the error.
func Line(e Entry, opts Options) string {
	st := newStyles(opts.Color)
	prefix := ""
	if opts.ShowInput {
		prefix = e.Input + ": "
	}
	if !e.ok() {
		msg := "no result"
		if e.Err != nil {
			msg = e.Err.Error()
		}
		return prefix + st.err.Sprint("error") + ": " + msg
	}
	return prefix + Breakdown(e.Roll.DB, e.Roll.Root, opts) + " = " +
		st.total.Sprint(strconv.FormatInt(e.Roll.Total, 10))
}

func writePretty(w io.Writer, entries []Entry, opts Options) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, Line(e, opts)); err != nil {
			return err
		}
	}
	return nil
}

func writeTree(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", e.Input); err != nil {
			return err
		}
		if e.Roll != nil && e.Roll.Root.IsValid() {
			if err := hir.Dump(w, e.Roll.DB, e.Roll.Root); err != nil {
				return err
			}
		}
		if e.ok() {
			_, err := fmt.Fprintf(w, "total: %d\n", e.Roll.Total)
			if err != nil {
				return err
			}
		} else if e.Err != nil {
			if _, err := fmt.Fprintf(w, "error: %v\n", e.Err); err != nil {
				return err
			}
		}
	}
	return nil
}
