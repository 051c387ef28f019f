// File: print.go
// Role: PrintGraph, the compact textual form of spec §6.
package serialize

import (
	"fmt"
	"strings"

	"github.com/gp2lang/gp2core/hostgraph"
	"github.com/gp2lang/gp2core/label"
)

// PrintGraph renders g in the compact form:
//
//	[ (n<idx>[(R)], <label> [# <mark>]) … | (e<idx>[(B)], n<src>, n<tgt>, <label> [# <mark>]) … ]
//
// The empty graph serialises as "[ | ]".
//
// Complexity: O(NumberOfNodes + NumberOfEdges).
func PrintGraph(g *hostgraph.Graph) string {
	var nodeParts, edgeParts []string

	for idx, n := range g.Nodes() {
		nodeParts = append(nodeParts, printNodeEntry(idx, n))
	}
	for idx, e := range g.Edges() {
		edgeParts = append(edgeParts, printEdgeEntry(idx, e))
	}

	var b strings.Builder
	b.WriteString("[ ")
	for _, p := range nodeParts {
		b.WriteString(p)
		b.WriteString(" ")
	}
	b.WriteString("| ")
	for _, p := range edgeParts {
		b.WriteString(p)
		b.WriteString(" ")
	}
	b.WriteString("]")

	return b.String()
}

func printNodeEntry(idx int, n *hostgraph.Node) string {
	flag := ""
	if n.Root() {
		flag = "(R)"
	}
	return fmt.Sprintf("(n%d%s, %s)", idx, flag, labelWithMark(n.Label()))
}

func printEdgeEntry(idx int, e *hostgraph.Edge) string {
	flag := ""
	if e.Bidirectional() {
		flag = "(B)"
	}
	return fmt.Sprintf("(e%d%s, n%d, n%d, %s)", idx, flag, e.Source(), e.Target(), labelWithMark(e.Label()))
}

func labelWithMark(l label.Label) string {
	s := l.String()
	if mark := l.Mark.String(); mark != "" {
		s += " # " + mark
	}
	return s
}
