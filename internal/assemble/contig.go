package assemble

import (
	"sort"
	"strings"
)

// Contigs walks the finished graph and returns every maximal unambiguous
// sequence in it.
//
// A node starts contigs when its in or out-degree isn't exactly 1: branch
// points, sources, dead ends and isolated nodes all qualify. One contig
// is started per outgoing edge of each such node and extended forward
// through nodes with in and out-degree exactly 1, appending the last
// character of every node visited.
//
// Output order is pinned so repeated runs are byte-identical:
// lexicographic over starting nodes, then lexicographic over each node's
// successors.
//
// A cycle in which every node has in and out-degree exactly 1 contains no
// starting node under this rule, so perfectly cyclic repeat structures
// are absent from the result. Callers that need them must break the
// cycle upstream.
func (g *Graph) Contigs() []string {
	order := make([]int, len(g.names))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return g.names[order[i]] < g.names[order[j]]
	})

	var contigs []string
	for _, id := range order {
		if g.indeg[id] == 1 && g.outdeg[id] == 1 {
			continue // internal chain node, never a starting point
		}
		for _, succ := range g.sortedSuccessors(id) {
			contigs = append(contigs, g.walk(id, succ))
		}
	}
	return contigs
}

// walk builds a single contig: the starting node's full (k-1)-mer, then
// the last character of each node reached by following unique successors.
// The chain ends on the first node that is itself a branch, terminal, or
// dead end. Purely forward, no revisiting: every chain node has a unique
// predecessor, so the walk can't loop back into itself.
func (g *Graph) walk(start, next int) string {
	var b strings.Builder
	b.WriteString(g.names[start])

	current := next
	for {
		name := g.names[current]
		b.WriteByte(name[len(name)-1])

		if g.indeg[current] != 1 || g.outdeg[current] != 1 {
			break
		}
		current = g.out[current][0]
	}
	return b.String()
}
