package cmd

import (
	"github.com/shredseq/shred/internal/shred"
	"github.com/spf13/cobra"
)

// runCmd is simulate and assemble end to end, with a Lander-Waterman cross-check
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate reads, assemble them, and cross-check against Lander-Waterman",
	Run:   shred.RunCmd,
	Long: `
Synthesize a genome, sample a read library, assemble the reads back into
contigs, and print the observed contig count next to the Lander-Waterman
prediction for the same coverage.

The analytic model is independent of the graph; it is a post-hoc sanity
check, not part of the assembly.`,
}

// set flags
func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("out", "o", "", "output file name for the JSON solution")
	runCmd.Flags().IntP("kmer", "k", 0, "k-mer length (default from settings)")
	runCmd.Flags().Int64P("seed", "x", 0, "PRNG seed (0 seeds from the clock)")
}
