package shred

import (
	"fmt"
	"os"
	"time"

	"github.com/shredseq/shred/config"
	"github.com/shredseq/shred/internal/assemble"
	"github.com/shredseq/shred/internal/fasta"
	"github.com/spf13/cobra"
)

// AssembleCmd assembles contigs from a FASTA of reads passed on the CLI.
func AssembleCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	f := parseFlags(cmd, c)

	if f.in == "" {
		cmd.Help()
		stderr.Fatalln("\nno input FASTA passed.")
	}

	records, err := fasta.Read(f.in)
	if err != nil {
		stderr.Fatalln(err)
	}

	reads := make([]string, len(records))
	for i, r := range records {
		reads[i] = r.Seq
	}

	out, g, err := run(c, reads, f.k, nil)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err := writeOutputs(f, out, g); err != nil {
		stderr.Fatalln(err)
	}
	reportAssembly(os.Stdout, out)
}

// run is the core pipeline shared by the assemble and run commands:
// build the graph from the reads, trace contigs, gather the output.
func run(c *config.Config, reads []string, k int, model *Model) (Out, *assemble.Graph, error) {
	start := time.Now()

	g, err := assemble.Build(reads, k)
	if err != nil {
		return Out{}, nil, err
	}
	contigs := g.Contigs()

	out := newOut(k, len(reads), g, contigs, model)

	if c.Verbose {
		fmt.Fprintf(os.Stderr, "assembled in %s\n", time.Since(start))
	}

	return out, g, nil
}

// writeOutputs writes whichever output files the command asked for:
// a JSON solution, a contig FASTA, and/or a DOT dump of the graph.
func writeOutputs(f *Flags, out Out, g *assemble.Graph) error {
	if f.out != "" {
		if err := writeJSON(f.out, out); err != nil {
			return err
		}
	}
	if f.fasta != "" {
		if err := fasta.WriteFile(f.fasta, contigRecords(out.Solution)); err != nil {
			return err
		}
	}
	if f.dot != "" {
		if err := writeDOTFile(f.dot, g); err != nil {
			return err
		}
	}
	return nil
}
