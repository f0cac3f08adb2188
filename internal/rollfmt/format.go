// Package rollfmt renders evaluated rolls for people and for machines.
package rollfmt

import (
	"fmt"
	"strings"

	"diceroll/internal/hir"
)

// Format selects an output encoding for roll results.
type Format uint8

const (
	// FormatPretty prints one breakdown line per expression.
	FormatPretty Format = iota
	// FormatJSON writes an array of snapshots.
	FormatJSON
	// FormatMsgpack writes the same snapshots as msgpack.
	FormatMsgpack
	// FormatTree dumps the evaluated arena.
	FormatTree
)

var formatNames = [...]string{"pretty", "json", "msgpack", "tree"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return FormatPretty, fmt.Errorf("unknown format %q (want %s)", s, strings.Join(formatNames[:], "|"))
}

// Options tune human-readable output.
type Options struct {
	Color bool
	// ShowInput prefixes every pretty line with the expression text.
	ShowInput bool
}

// Entry is one evaluated expression.
// Roll may be nil when nothing could be lowered; Err is nil on success.
type Entry struct {
	Input string
	Roll  *hir.RollResult
	Err   error
}

func (e Entry) ok() bool {
	return e.Err == nil && e.Roll != nil
}
