package source

import "bytes"

// Position is a 1-based line and byte column.
type Position struct {
	Line uint32
	Col  uint32
}

// Position resolves a byte offset within the content.
func (f *File) Position(off uint32) Position {
	if n := f.Len(); off > n {
		off = n
	}
	head := f.Content[:off]
	line := uint32(bytes.Count(head, []byte{'\n'})) + 1 //nolint:gosec // bounded by Len
	start := bytes.LastIndexByte(head, '\n') + 1
	return Position{Line: line, Col: off - uint32(start) + 1} //nolint:gosec // start <= off
}

// LineBounds returns the [start, end) offsets of the line containing off,
// without the trailing newline.
func (f *File) LineBounds(off uint32) (uint32, uint32) {
	n := f.Len()
	if off > n {
		off = n
	}
	start := uint32(bytes.LastIndexByte(f.Content[:off], '\n') + 1) //nolint:gosec // bounded by Len
	end := n
	if i := bytes.IndexByte(f.Content[off:], '\n'); i >= 0 {
		end = off + uint32(i) //nolint:gosec // bounded by Len
	}
	return start, end
}
