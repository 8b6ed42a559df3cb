package shred

import (
	"os"

	"github.com/shredseq/shred/config"
	"github.com/shredseq/shred/internal/stats"
	"github.com/spf13/cobra"
)

// RunCmd simulates a read library in memory, assembles it, and prints
// the observed contig count next to the Lander-Waterman prediction.
func RunCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	f := parseFlags(cmd, c)

	genome, reads := library(c, f.seed)

	coverage := stats.Coverage(len(genome), c.ReadLength, c.ReadCount)
	model := &Model{
		GenomeLength:     len(genome),
		ReadLength:       c.ReadLength,
		ReadCount:        c.ReadCount,
		Coverage:         coverage,
		PredictedContigs: stats.PredictedContigs(len(genome), coverage),
		ExpectedIslands:  stats.ExpectedIslands(c.ReadCount, coverage),
	}

	out, g, err := run(c, reads, f.k, model)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err := writeOutputs(f, out, g); err != nil {
		stderr.Fatalln(err)
	}
	reportAssembly(os.Stdout, out)
}
