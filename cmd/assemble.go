package cmd

import (
	"github.com/shredseq/shred/internal/shred"
	"github.com/spf13/cobra"
)

// assembleCmd reads a FASTA of short reads and traces contigs from them
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble contigs from a FASTA of short reads",
	Run:   shred.AssembleCmd,
	Long: `
Extract k-mers from every read, build a de Bruijn graph whose nodes are
(k-1)-mers and whose edges are k-mers, and walk the graph's unambiguous
chains to emit contigs.

Contigs are emitted in a fixed order (lexicographic over starting nodes,
then over successors) so repeated runs over the same reads are
byte-identical.`,
}

// set flags
func init() {
	RootCmd.AddCommand(assembleCmd)

	// Flags for specifying the paths to the input file and output files
	assembleCmd.Flags().StringP("in", "i", "", "input multi-FASTA with short reads")
	assembleCmd.Flags().StringP("out", "o", "", "output file name for the JSON solution")
	assembleCmd.Flags().StringP("fasta", "f", "", "output file name for the contigs <FASTA>")
	assembleCmd.Flags().StringP("dot", "d", "", "output file name for the graph <DOT>")
	assembleCmd.Flags().IntP("kmer", "k", 0, "k-mer length (default from settings)")

	assembleCmd.MarkFlagRequired("in")
}
