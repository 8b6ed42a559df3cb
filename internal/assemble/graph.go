package assemble

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrKmerLength is returned when a k-mer is too short to split into
	// a prefix/suffix pair, or when k is out of range for the reads.
	ErrKmerLength = errors.New("invalid k-mer length")

	// ErrAlphabet is returned when a read contains a character outside ACGT.
	ErrAlphabet = errors.New("invalid character in read")
)

// Graph is a de Bruijn graph: nodes are (k-1)-mers and each k-mer
// contributes one directed edge from its prefix to its suffix.
//
// Nodes are interned to integer indices in an arena table so edge
// insertion and traversal work on ints instead of re-hashing (k-1)-mer
// strings. In/out-degrees are counted at insertion time. Edges are
// deduplicated: the same k-mer seen across reads collapses to a single
// edge and the graph carries no coverage weights.
type Graph struct {
	names  []string       // node index -> (k-1)-mer
	ids    map[string]int // (k-1)-mer -> node index
	out    [][]int        // distinct successors per node
	indeg  []int
	outdeg []int
	edges  int
}

// NewGraph returns an empty de Bruijn graph.
func NewGraph() *Graph {
	return &Graph{ids: make(map[string]int)}
}

// AddKmer inserts the directed edge prefix->suffix for one k-mer,
// creating either endpoint node if it hasn't been seen. Re-inserting an
// existing edge is a no-op: degrees and edge count are unchanged.
//
// A k-mer needs at least two characters to have a non-empty prefix and
// suffix; anything shorter fails with ErrKmerLength.
func (g *Graph) AddKmer(kmer string) error {
	if len(kmer) < 2 {
		return fmt.Errorf("%w: %q is %d bp, need at least 2", ErrKmerLength, kmer, len(kmer))
	}

	from := g.intern(kmer[:len(kmer)-1])
	to := g.intern(kmer[1:])

	for _, succ := range g.out[from] {
		if succ == to {
			return nil // duplicate edge
		}
	}

	g.out[from] = append(g.out[from], to)
	g.outdeg[from]++
	g.indeg[to]++
	g.edges++
	return nil
}

// intern returns the index for a (k-1)-mer, creating the node if absent.
func (g *Graph) intern(name string) int {
	if id, ok := g.ids[name]; ok {
		return id
	}

	id := len(g.names)
	g.ids[name] = id
	g.names = append(g.names, name)
	g.out = append(g.out, nil)
	g.indeg = append(g.indeg, 0)
	g.outdeg = append(g.outdeg, 0)
	return id
}

// NumNodes returns the number of distinct (k-1)-mers in the graph.
func (g *Graph) NumNodes() int {
	return len(g.names)
}

// NumEdges returns the number of distinct edges in the graph.
func (g *Graph) NumEdges() int {
	return g.edges
}

// Nodes returns every (k-1)-mer in the graph in lexicographic order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.names))
	copy(nodes, g.names)
	sort.Strings(nodes)
	return nodes
}

// Degrees returns the in and out-degree of the node with the passed
// (k-1)-mer. Both are zero for nodes not in the graph.
func (g *Graph) Degrees(name string) (in, out int) {
	id, ok := g.ids[name]
	if !ok {
		return 0, 0
	}
	return g.indeg[id], g.outdeg[id]
}

// Successors returns a node's distinct out-neighbors in lexicographic order.
func (g *Graph) Successors(name string) []string {
	id, ok := g.ids[name]
	if !ok {
		return nil
	}

	succs := make([]string, len(g.out[id]))
	for i, succ := range g.sortedSuccessors(id) {
		succs[i] = g.names[succ]
	}
	return succs
}

// sortedSuccessors returns a node's successor indices ordered by node
// name, so traversal order doesn't depend on insertion order.
func (g *Graph) sortedSuccessors(id int) []int {
	succs := make([]int, len(g.out[id]))
	copy(succs, g.out[id])
	sort.Slice(succs, func(i, j int) bool {
		return g.names[succs[i]] < g.names[succs[j]]
	})
	return succs
}
