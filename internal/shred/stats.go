package shred

import (
	"os"

	"github.com/shredseq/shred/internal/stats"
	"github.com/spf13/cobra"
)

// StatsCmd prints the Lander-Waterman expectations for a sequencing
// project without simulating or assembling anything.
func StatsCmd(cmd *cobra.Command, args []string) {
	g, _ := cmd.Flags().GetInt("genome-length")
	l, _ := cmd.Flags().GetInt("read-length")
	n, _ := cmd.Flags().GetInt("read-count")

	if g < 1 || l < 1 || n < 1 {
		cmd.Help()
		stderr.Fatalln("\ngenome-length, read-length and read-count must all be positive.")
	}

	coverage := stats.Coverage(g, l, n)
	m := Model{
		GenomeLength:     g,
		ReadLength:       l,
		ReadCount:        n,
		Coverage:         coverage,
		PredictedContigs: stats.PredictedContigs(g, coverage),
		ExpectedIslands:  stats.ExpectedIslands(n, coverage),
	}

	reportModel(os.Stdout, m, -1)
}
