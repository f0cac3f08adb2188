package trace

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format determines the output format for stream tracers.
type Format uint8

const (
	FormatAuto   Format = iota // text for terminals and files
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// FormatEvent renders ev in the given format, without a trailing newline.
func FormatEvent(ev *Event, f Format) ([]byte, error) {
	switch f {
	case FormatNDJSON:
		return formatNDJSON(ev)
	default:
		return []byte(formatText(ev)), nil
	}
}

// formatText: [seq=12 gid=1] begin pass  lower (span=3 parent=1)
func formatText(ev *Event) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[seq=%d gid=%d] %-5s %-6s %s", ev.Seq, ev.GID, ev.Kind, ev.Scope, ev.Name)
	if ev.SpanID != 0 || ev.ParentID != 0 {
		fmt.Fprintf(&sb, " (span=%d parent=%d)", ev.SpanID, ev.ParentID)
	}
	if ev.Detail != "" {
		sb.WriteString(" ")
		sb.WriteString(ev.Detail)
	}
	if len(ev.Extra) > 0 {
		keys := make([]string, 0, len(ev.Extra))
		for k := range ev.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%s", k, ev.Extra[k])
		}
	}
	return sb.String()
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	GID      uint64            `json:"gid"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func formatNDJSON(ev *Event) ([]byte, error) {
	return json.Marshal(jsonEvent{
		Time:     ev.Time.Format(time.RFC3339Nano),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		GID:      ev.GID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Extra:    ev.Extra,
	})
}
