package simulate

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenome(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	genome := Genome(rng, 500)
	assert.Len(t, genome, 500)
	for i := 0; i < len(genome); i++ {
		assert.Contains(t, "ACGT", string(genome[i]))
	}

	// same seed, same genome
	again := Genome(rand.New(rand.NewSource(42)), 500)
	assert.Equal(t, genome, again)

	// different seed, different genome
	other := Genome(rand.New(rand.NewSource(43)), 500)
	assert.NotEqual(t, genome, other)

	assert.Empty(t, Genome(rng, 0))
}

func TestReads(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	genome := Genome(rng, 300)

	reads := Reads(rng, genome, 40, 25)
	require.Len(t, reads, 25)
	for _, read := range reads {
		assert.Len(t, read, 40)
		assert.Contains(t, genome, read)
	}

	assert.Nil(t, Reads(rng, genome, 301, 5), "read longer than the genome")
	assert.Nil(t, Reads(rng, genome, 0, 5))
}

func TestMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	read := "ACGTACGTACGTACGTACGT"

	assert.Equal(t, read, Mutate(rng, read, 0), "rate 0 is the identity")

	// rate 1 substitutes every base, always to a different one
	mutated := Mutate(rng, read, 1)
	require.Len(t, mutated, len(read))
	for i := range read {
		assert.NotEqual(t, read[i], mutated[i], "position %d unchanged", i)
		assert.Contains(t, "ACGT", string(mutated[i]))
	}
}

func TestInjectRepeat(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	genome := Genome(rng, 400)

	withRepeat := InjectRepeat(rng, genome, 30, 1)
	require.Len(t, withRepeat, len(genome))

	// some 30 bp segment now occurs at least twice: the source was
	// copied to a locus clear of itself
	found := false
	for i := 0; i+30 <= len(withRepeat) && !found; i++ {
		segment := withRepeat[i : i+30]
		if strings.Count(withRepeat, segment) >= 2 {
			found = true
		}
	}
	assert.True(t, found, "no repeated 30 bp segment after injection")

	// too short to hold the source and a disjoint copy
	assert.Equal(t, "ACGT", InjectRepeat(rng, "ACGT", 3, 1))
	assert.Equal(t, genome, InjectRepeat(rng, genome, 0, 1))
	assert.Equal(t, genome, InjectRepeat(rng, genome, 30, 0))
}

// a genome exactly twice the repeat length: a centered source has no
// disjoint destination, so the call must return the genome unchanged
// instead of searching forever
func TestInjectRepeat_tightFit(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))

		got := InjectRepeat(rng, "ACGT", 2, 1)
		require.Len(t, got, 4, "seed %d", seed)

		// the only disjoint placements copy one half over the other,
		// so any changed genome has equal halves
		if got != "ACGT" {
			assert.Equal(t, got[:2], got[2:], "seed %d", seed)
		}
	}
}

// every destination must stay clear of the source segment
func TestInjectRepeat_disjointCopies(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		genome := Genome(rng, 90)

		got := InjectRepeat(rng, genome, 30, 3)
		require.Len(t, got, len(genome), "seed %d", seed)
	}
}

func TestLibrary(t *testing.T) {
	genome := Genome(rand.New(rand.NewSource(3)), 200)

	a := Library(rand.New(rand.NewSource(9)), genome, 30, 10, 0.05)
	b := Library(rand.New(rand.NewSource(9)), genome, 30, 10, 0.05)

	require.Len(t, a, 10)
	assert.Equal(t, a, b, "same seed must give the same library")

	for _, read := range a {
		assert.Len(t, read, 30)
	}
}
