package shred

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/shredseq/shred/internal/assemble"
	"github.com/shredseq/shred/internal/fasta"
)

// Contig is a single assembled sequence in the output.
type Contig struct {
	ID string `json:"id"`

	Length int `json:"length"`

	Seq string `json:"seq"`
}

// Solution is the set of contigs assembled from one read library.
type Solution struct {
	// Count is the number of contigs in this solution
	Count int `json:"count"`

	// N50 is the shortest contig length covering half the assembled bases
	N50 int `json:"n50"`

	// Contigs in their deterministic emission order
	Contigs []Contig `json:"contigs"`
}

// Model holds the Lander-Waterman expectations for the run.
type Model struct {
	GenomeLength int `json:"genomeLength"`

	ReadLength int `json:"readLength"`

	ReadCount int `json:"readCount"`

	Coverage float64 `json:"coverage"`

	PredictedContigs float64 `json:"predictedContigs"`

	ExpectedIslands float64 `json:"expectedIslands"`
}

// Out is the result output from this assembly
type Out struct {
	// local time the assembly finished
	Time string `json:"time"`

	// the k-mer length the graph was built with
	K int `json:"k"`

	// the number of input reads
	Reads int `json:"reads"`

	// distinct (k-1)-mers in the graph
	Nodes int `json:"nodes"`

	// distinct edges in the graph
	Edges int `json:"edges"`

	// the assembled contigs
	Solution Solution `json:"solution"`

	// analytic cross-check, when the run simulated its own reads
	Model *Model `json:"model,omitempty"`
}

// newOut gathers graph stats and contigs into the output struct.
func newOut(k, readCount int, g *assemble.Graph, contigs []string, model *Model) Out {
	return Out{
		Time:     time.Now().String(),
		K:        k,
		Reads:    readCount,
		Nodes:    g.NumNodes(),
		Edges:    g.NumEdges(),
		Solution: solution(contigs),
		Model:    model,
	}
}

// solution wraps contig strings, keeping their emission order.
func solution(contigs []string) Solution {
	out := make([]Contig, len(contigs))
	for i, seq := range contigs {
		out[i] = Contig{
			ID:     fmt.Sprintf("contig_%d", i+1),
			Length: len(seq),
			Seq:    seq,
		}
	}

	return Solution{
		Count:   len(contigs),
		N50:     n50(contigs),
		Contigs: out,
	}
}

// n50 is the length of the shortest contig among the longest contigs
// that together cover at least half the assembled bases.
func n50(contigs []string) int {
	if len(contigs) == 0 {
		return 0
	}

	lengths := make([]int, len(contigs))
	total := 0
	for i, c := range contigs {
		lengths[i] = len(c)
		total += len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	cum := 0
	for _, l := range lengths {
		cum += l
		if 2*cum >= total {
			return l
		}
	}
	return lengths[len(lengths)-1]
}

// writeJSON writes the output to the fs at the output path.
func writeJSON(filename string, out Out) error {
	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return fmt.Errorf("failed to write the output: %v", err)
	}
	return nil
}

// contigRecords converts contigs to FASTA records for output.
func contigRecords(s Solution) []fasta.Record {
	records := make([]fasta.Record, len(s.Contigs))
	for i, c := range s.Contigs {
		records[i] = fasta.Record{ID: c.ID, Seq: c.Seq}
	}
	return records
}

// writeDOT renders the graph as Graphviz DOT: one line per edge, nodes
// in lexicographic order. Isolated nodes are listed bare so they aren't
// lost from the drawing.
func writeDOT(w io.Writer, g *assemble.Graph) error {
	if _, err := fmt.Fprintln(w, "digraph debruijn {"); err != nil {
		return err
	}

	for _, n := range g.Nodes() {
		succs := g.Successors(n)
		if len(succs) == 0 {
			if in, _ := g.Degrees(n); in == 0 {
				fmt.Fprintf(w, "\t%q;\n", n)
			}
			continue
		}
		for _, s := range succs {
			fmt.Fprintf(w, "\t%q -> %q;\n", n, s)
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// writeDOTFile writes the graph as a DOT file at path.
func writeDOTFile(path string, g *assemble.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create DOT file: %v", err)
	}
	defer f.Close()

	return writeDOT(f, g)
}

// reportAssembly prints a run summary table, and the Lander-Waterman
// cross-check when the run carries one.
func reportAssembly(w io.Writer, out Out) {
	color.New(color.FgGreen, color.Bold).Fprintln(w, "assembly")

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "k\treads\tnodes\tedges\tcontigs\tn50\tlongest\n")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
		out.K, out.Reads, out.Nodes, out.Edges,
		out.Solution.Count, out.Solution.N50, longest(out.Solution))
	tw.Flush()

	if out.Model != nil {
		fmt.Fprintln(w)
		reportModel(w, *out.Model, out.Solution.Count)
	}
}

// reportModel prints the analytic expectations next to the observed
// contig count. A negative observed count means there was no assembly
// to compare against.
func reportModel(w io.Writer, m Model, observed int) {
	color.New(color.FgGreen, color.Bold).Fprintln(w, "lander-waterman")

	observedCol := "-"
	if observed >= 0 {
		observedCol = fmt.Sprintf("%d", observed)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "G\tL\tN\tcoverage\tpredicted\tislands\tobserved\n")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f\t%.2f\t%.2f\t%s\n",
		m.GenomeLength, m.ReadLength, m.ReadCount, m.Coverage, m.PredictedContigs, m.ExpectedIslands, observedCol)
	tw.Flush()
}

// longest returns the longest contig length in a solution.
func longest(s Solution) int {
	max := 0
	for _, c := range s.Contigs {
		if c.Length > max {
			max = c.Length
		}
	}
	return max
}
