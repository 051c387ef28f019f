// File: verbose.go
// Role: VerboseGraph, the human-readable dump of spec §6.
package serialize

import (
	"fmt"
	"strings"

	"github.com/gp2lang/gp2core/hostgraph"
)

// VerboseGraph renders g as a human-readable dump: each node's index,
// root flag, class, label, and in/out-degrees; each edge's index,
// bidirectional flag, class, label, and endpoints; then the root-node
// list.
//
// Complexity: O(NumberOfNodes + NumberOfEdges).
func VerboseGraph(g *hostgraph.Graph) string {
	var b strings.Builder

	fmt.Fprintf(&b, "nodes (%d):\n", g.NumberOfNodes())
	for idx, n := range g.Nodes() {
		fmt.Fprintf(&b, "  n%d root=%v class=%s label=%s in=%d out=%d\n",
			idx, n.Root(), n.Class(), n.Label(), n.InDegree(), n.OutDegree())
	}

	fmt.Fprintf(&b, "edges (%d):\n", g.NumberOfEdges())
	for idx, e := range g.Edges() {
		fmt.Fprintf(&b, "  e%d bidirectional=%v class=%s label=%s n%d -> n%d\n",
			idx, e.Bidirectional(), e.Class(), e.Label(), e.Source(), e.Target())
	}

	fmt.Fprintf(&b, "roots: %v\n", g.RootNodes())

	return b.String()
}
