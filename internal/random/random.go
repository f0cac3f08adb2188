// Package random provides the roll context: a seeded stream of die faces.
//
// A Context is owned by exactly one evaluation. Every draw, whether from Roll
// or RollMany, advances the same stream, so a roll is fully determined by the
// seed and the order of calls.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"iter"
	"math/rand/v2"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Uint64N(n uint64) uint64
}

// pcgStream is the second PCG word; any odd constant works, fixing it keeps
// a seed meaning the same thing across releases.
const pcgStream = 0x9e3779b97f4a7c15

type Context struct {
	src   Source
	seed  uint64
	draws uint64
}

// New returns a deterministic context for seed.
func New(seed uint64) *Context {
	return &Context{
		src:  rand.New(rand.NewPCG(seed, seed^pcgStream)),
		seed: seed,
	}
}

// NewFromEntropy seeds a context from crypto/rand and reports the seed,
// so the roll can be replayed with New.
func NewFromEntropy() (*Context, uint64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return New(seed), seed, nil
}

// NewWithSource wraps an arbitrary source; Seed reports 0.
func NewWithSource(src Source) *Context {
	return &Context{src: src}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Seed returns the seed the context was built from.
func (c *Context) Seed() uint64 { return c.seed }

// Draws returns how many faces have been drawn so far.
func (c *Context) Draws() uint64 { return c.draws }

// Roll returns a face in [1, sides]. sides must be positive; callers reject
// zero-sided dice before they get here.
func (c *Context) Roll(sides uint64) uint64 {
	if sides == 0 {
		panic("random: roll of a zero-sided die")
	}
	c.draws++
	return c.src.Uint64N(sides) + 1
}

// RollMany lazily yields count faces in [1, sides], drawn in order from the
// same stream as Roll.
func (c *Context) RollMany(sides, count uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for range count {
			if !yield(c.Roll(sides)) {
				return
			}
		}
	}
}
