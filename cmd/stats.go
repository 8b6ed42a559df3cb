package cmd

import (
	"github.com/shredseq/shred/internal/shred"
	"github.com/spf13/cobra"
)

// statsCmd prints Lander-Waterman expectations for a sequencing project
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print Lander-Waterman coverage and contig expectations",
	Run:   shred.StatsCmd,
	Long: `
Compute coverage (L*N/G) and the expected contig yield for a genome of
length G sequenced with N reads of length L. No reads are simulated and
no graph is built.`,
}

// set flags
func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntP("genome-length", "g", 0, "genome length G in bp")
	statsCmd.Flags().IntP("read-length", "l", 0, "read length L in bp")
	statsCmd.Flags().IntP("read-count", "n", 0, "number of reads N")

	statsCmd.MarkFlagRequired("genome-length")
	statsCmd.MarkFlagRequired("read-length")
	statsCmd.MarkFlagRequired("read-count")
}
