package fuzztests

import (
	"testing"
)

const maxSeedBytes = 4 << 10

const maxFuzzInput = 1 << 12

// corpus covers every operator, selector and error path the parser knows.
var corpus = []string{
	"",
	"1",
	"d20",
	"1d20 + 5",
	"4d6kh3",
	"4d6p1",
	"2d20kl1 - 1d4 * 2 + 7",
	"3d6rr1",
	"3d6ro<3",
	"5d10ra>8",
	"3d6e6",
	"2d6mi3ma5",
	"3d%",
	"(1, 2, 3)kh2",
	"(4,)",
	"()",
	"(100, 2d100)e100",
	"(1d8, 1d10)p<5",
	"-(1 + 2) / 0",
	"1d6kh",
	"2d0",
	"99999999999999999999",
	"1d6rr<7",
	"((1d4)",
	"1 + * 2",
	"２ｄ６＋１",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range corpus {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return src
	}
	return src[:maxSeedBytes]
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
