package cmd

import (
	"github.com/shredseq/shred/internal/shred"
	"github.com/spf13/cobra"
)

// simulateCmd synthesizes a genome and samples a shotgun read library from it
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Synthesize a genome and sample shotgun reads from it",
	Run:   shred.SimulateCmd,
	Long: `
Synthesize a uniform random ACGT genome, optionally copy a repeat segment
to a second locus, sample reads from uniform random start positions, and
inject per-base substitution errors at the configured rate.

All randomness comes from a single seeded source, so the same seed always
produces the same genome and reads.`,
}

// set flags
func init() {
	RootCmd.AddCommand(simulateCmd)

	// Flags for specifying the output files and simulation overrides
	simulateCmd.Flags().StringP("out", "o", "", "output file name for the reads <FASTA>")
	simulateCmd.Flags().StringP("genome-out", "g", "", "output file name for the genome <FASTA>")
	simulateCmd.Flags().Int64P("seed", "x", 0, "PRNG seed (0 seeds from the clock)")

	simulateCmd.MarkFlagRequired("out")
}
