// Package shred ties the simulator, the assembler and the coverage model
// to the command line. Parsing flags, reading/writing FASTA and JSON, and
// console reporting live here; the algorithms live in internal/assemble,
// internal/simulate and internal/stats.
package shred

import (
	"log"
	"os"
	"time"

	"github.com/shredseq/shred/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "out", "kmer", etc that
// are used by multiple commands.
type Flags struct {
	// the name of the FASTA file to read the reads from
	in string

	// the name of the file to write the JSON solution to
	out string

	// the name of the FASTA file to write contigs to
	fasta string

	// the name of the DOT file to write the graph to
	dot string

	// the k-mer length for graph construction
	k int

	// the simulator's PRNG seed
	seed int64
}

// parseFlags gathers the flags a command declares; missing flags fall
// back to settings and, for the seed, to the clock.
func parseFlags(cmd *cobra.Command, c *config.Config) *Flags {
	f := &Flags{}

	f.in, _ = cmd.Flags().GetString("in")
	f.out, _ = cmd.Flags().GetString("out")
	f.fasta, _ = cmd.Flags().GetString("fasta")
	f.dot, _ = cmd.Flags().GetString("dot")

	if f.k, _ = cmd.Flags().GetInt("kmer"); f.k == 0 {
		f.k = c.K
	}
	if f.seed, _ = cmd.Flags().GetInt64("seed"); f.seed == 0 {
		f.seed = c.Seed
	}
	if f.seed == 0 {
		f.seed = time.Now().UnixNano()
	}

	return f
}
