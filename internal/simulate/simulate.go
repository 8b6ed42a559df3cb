// Package simulate synthesizes genomes and shotgun read libraries for
// exercising the assembler without a sequencer.
//
// Every function takes an explicit *rand.Rand so callers control the
// seed; the package never touches process-wide random state.
package simulate

import (
	"math/rand"
)

var bases = []byte{'A', 'C', 'G', 'T'}

// Genome returns a uniform random sequence over ACGT of the passed length.
func Genome(rng *rand.Rand, length int) string {
	if length < 1 {
		return ""
	}

	seq := make([]byte, length)
	for i := range seq {
		seq[i] = bases[rng.Intn(len(bases))]
	}
	return string(seq)
}

// InjectRepeat copies one randomly chosen segment of the genome over
// `copies` other loci, so the genome carries exact repeats the way real
// genomes do. The genome's length is unchanged. Copy destinations never
// overlap the source segment, though two copies may overlap each other.
//
// The genome is returned unmodified when it's too short to hold the
// source and one disjoint copy, or when the drawn source sits where no
// disjoint destination fits.
func InjectRepeat(rng *rand.Rand, genome string, repeatLen, copies int) string {
	if repeatLen < 1 || copies < 1 || len(genome) < 2*repeatLen {
		return genome
	}

	seq := []byte(genome)

	src := rng.Intn(len(seq) - repeatLen + 1)
	repeat := make([]byte, repeatLen)
	copy(repeat, seq[src:src+repeatLen])

	// destinations disjoint from the source are [0, src-repeatLen] on
	// the left and [src+repeatLen, len-repeatLen] on the right
	left := src - repeatLen + 1
	if left < 0 {
		left = 0
	}
	right := len(seq) - 2*repeatLen - src + 1
	if right < 0 {
		right = 0
	}
	if left+right == 0 {
		return genome
	}

	for c := 0; c < copies; c++ {
		dst := rng.Intn(left + right)
		if dst >= left {
			dst = src + repeatLen + (dst - left)
		}
		copy(seq[dst:], repeat)
	}
	return string(seq)
}

// Reads samples count reads of readLen bp from uniform random start
// positions on the genome. Returns nil when no read of that length fits.
func Reads(rng *rand.Rand, genome string, readLen, count int) []string {
	if readLen < 1 || readLen > len(genome) || count < 1 {
		return nil
	}

	reads := make([]string, count)
	for i := range reads {
		start := rng.Intn(len(genome) - readLen + 1)
		reads[i] = genome[start : start+readLen]
	}
	return reads
}

// Mutate substitutes bases of a read at the passed per-base error rate.
// A substituted base always becomes one of the other three bases, so a
// rate of 1 changes every position.
func Mutate(rng *rand.Rand, read string, rate float64) string {
	if rate <= 0 {
		return read
	}

	seq := []byte(read)
	for i := range seq {
		if rng.Float64() >= rate {
			continue
		}

		b := bases[rng.Intn(len(bases))]
		for b == seq[i] {
			b = bases[rng.Intn(len(bases))]
		}
		seq[i] = b
	}
	return string(seq)
}

// Library samples a full shotgun read library: uniform random starts
// plus per-base substitution errors.
func Library(rng *rand.Rand, genome string, readLen, count int, errorRate float64) []string {
	reads := Reads(rng, genome, readLen, count)
	for i, read := range reads {
		reads[i] = Mutate(rng, read, errorRate)
	}
	return reads
}
