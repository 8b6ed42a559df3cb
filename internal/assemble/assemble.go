// Package assemble reconstructs contigs from short reads using a k-mer
// de Bruijn graph.
//
// The pipeline is reads -> k-mers -> graph -> contigs. It is a
// single-threaded batch computation over in-memory strings: the graph is
// built in one pass and read-only afterward, and contig emission order is
// deterministic for a given read set and k.
package assemble

import (
	"fmt"
)

// Assemble extracts k-mers from every read, builds the de Bruijn graph,
// and traces contigs from it. See Build for input requirements. An empty
// read set is valid and yields no contigs.
func Assemble(reads []string, k int) ([]string, error) {
	g, err := Build(reads, k)
	if err != nil {
		return nil, err
	}
	return g.Contigs(), nil
}

// Build validates the reads and builds the de Bruijn graph without
// tracing it, for callers that want the graph itself (reporting, DOT
// dumps).
//
// k must be at least 2 and no longer than the shortest read, and reads
// are restricted to the ACGT alphabet. Validation happens up front so a
// bad read set fails before any graph state is built.
func Build(reads []string, k int) (*Graph, error) {
	if err := validate(reads, k); err != nil {
		return nil, err
	}

	g := NewGraph()
	for _, read := range reads {
		for _, kmer := range Kmers(read, k) {
			if err := g.AddKmer(kmer); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// validate fails fast on a k out of range for the read set or a read
// with characters outside ACGT.
func validate(reads []string, k int) error {
	if k < 2 {
		return fmt.Errorf("%w: k=%d, need at least 2", ErrKmerLength, k)
	}

	for i, read := range reads {
		if k > len(read) {
			return fmt.Errorf("%w: k=%d exceeds read %d (%d bp)", ErrKmerLength, k, i, len(read))
		}
		for j := 0; j < len(read); j++ {
			switch read[j] {
			case 'A', 'C', 'G', 'T':
			default:
				return fmt.Errorf("%w: read %d has %q at position %d", ErrAlphabet, i, read[j], j)
			}
		}
	}
	return nil
}
