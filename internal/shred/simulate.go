package shred

import (
	"fmt"
	"math/rand"

	"github.com/shredseq/shred/config"
	"github.com/shredseq/shred/internal/fasta"
	"github.com/shredseq/shred/internal/simulate"
	"github.com/spf13/cobra"
)

// SimulateCmd synthesizes a genome and a shotgun read library and writes
// them as FASTA.
func SimulateCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	f := parseFlags(cmd, c)

	if f.out == "" {
		cmd.Help()
		stderr.Fatalln("\nno output file passed.")
	}

	genome, reads := library(c, f.seed)

	records := make([]fasta.Record, len(reads))
	for i, read := range reads {
		records[i] = fasta.Record{ID: fmt.Sprintf("read_%d", i+1), Seq: read}
	}
	if err := fasta.WriteFile(f.out, records); err != nil {
		stderr.Fatalln(err)
	}

	if genomeOut, _ := cmd.Flags().GetString("genome-out"); genomeOut != "" {
		genomeRecord := []fasta.Record{{ID: "genome", Seq: genome}}
		if err := fasta.WriteFile(genomeOut, genomeRecord); err != nil {
			stderr.Fatalln(err)
		}
	}

	if c.Verbose {
		stderr.Printf("simulated %d reads of %d bp from a %d bp genome (seed %d)\n",
			len(reads), c.ReadLength, len(genome), f.seed)
	}
}

// library synthesizes a genome and samples the configured read library
// from it, all from one seeded PRNG.
func library(c *config.Config, seed int64) (genome string, reads []string) {
	rng := rand.New(rand.NewSource(seed))

	genome = simulate.Genome(rng, c.GenomeLength)
	if c.RepeatLength > 0 {
		genome = simulate.InjectRepeat(rng, genome, c.RepeatLength, c.RepeatCopies)
	}

	reads = simulate.Library(rng, genome, c.ReadLength, c.ReadCount, c.ErrorRate)
	return genome, reads
}
