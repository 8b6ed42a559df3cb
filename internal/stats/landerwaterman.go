// Package stats implements the Lander-Waterman coverage model used to
// sanity-check assembly output against closed-form expectations. It is
// independent of the graph: the inputs are the genome length, read
// length and read count alone.
package stats

import (
	"math"
)

// Coverage is the expected number of reads overlapping a genomic
// position: L*N/G. Zero for a non-positive genome length.
func Coverage(genomeLen, readLen, readCount int) float64 {
	if genomeLen <= 0 {
		return 0
	}
	return float64(readLen) * float64(readCount) / float64(genomeLen)
}

// PredictedContigs is the model's contig yield for a genome of length G
// at coverage c: G*(1-e^(-c)). Compared against the assembler's observed
// contig count after a run.
func PredictedContigs(genomeLen int, coverage float64) float64 {
	return float64(genomeLen) * (1 - math.Exp(-coverage))
}

// ExpectedIslands is the Lander-Waterman expected number of read islands
// (gap-separated contigs) for N reads at coverage c: N*e^(-c). At high
// coverage this tends to the single-contig limit from below 1.
func ExpectedIslands(readCount int, coverage float64) float64 {
	return float64(readCount) * math.Exp(-coverage)
}
