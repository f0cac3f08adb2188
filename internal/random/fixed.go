package random

import "fmt"

// Fixed replays a scripted list of faces. It is meant for tests and for
// reproducing a reported roll exactly; a face larger than the requested
// die wraps around.
type Fixed struct {
	faces []uint64
	next  int
}

func NewFixed(faces ...uint64) *Fixed {
	return &Fixed{faces: faces}
}

// Uint64N implements Source. It panics once the script runs out.
func (f *Fixed) Uint64N(n uint64) uint64 {
	if f.next >= len(f.faces) {
		panic(fmt.Sprintf("random: fixed source exhausted after %d faces", len(f.faces)))
	}
	face := f.faces[f.next]
	f.next++
	if face == 0 {
		return 0
	}
	return (face - 1) % n
}

// Remaining reports how many scripted faces are left.
func (f *Fixed) Remaining() int {
	return len(f.faces) - f.next
}
