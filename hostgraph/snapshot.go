// File: snapshot.go
// Role: the snapshot stack (spec §4.4).
//
// Because every cross-reference in this package is a plain int index
// (SPEC_FULL.md §5), a faithful deep copy needs none of the reference
// design's three passes (copy edges, copy nodes translating incidence
// handles, rewrite copied edges' source/target): replicating each
// slotted container's shape via slotstore.Container.Clone already
// preserves every index, so edges in the clone reference the clone's
// own nodes by construction. copy_graph's "two/three-pass" description
// is satisfied by one structural pass per container.
package hostgraph

import "github.com/gp2lang/gp2core/label"

// Clone returns a deep, independent copy of g: every node, edge, label,
// incidence container, free-slot stack, and both class indices are
// copied, and every stable index is preserved.
//
// Complexity: O(NumberOfNodes + NumberOfEdges).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		nodes:                   g.nodes.Clone(cloneNode),
		edges:                   g.edges.Clone(cloneEdge),
		nodesByClass:            cloneClassMap(g.nodesByClass),
		edgesByClass:            cloneClassMap(g.edgesByClass),
		roots:                   g.roots.clone(),
		maxNodes:                g.maxNodes,
		maxEdges:                g.maxEdges,
		maxIncidentEdgesPerNode: g.maxIncidentEdgesPerNode,
		diag:                    g.diag,
	}

	return out
}

func cloneNode(n *Node) *Node {
	cp := &Node{
		root:      n.root,
		lbl:       n.lbl,
		class:     n.class,
		inDegree:  n.inDegree,
		outDegree: n.outDegree,
		outEdges:  n.outEdges.Clone(cloneIncidenceSlot),
		inEdges:   n.inEdges.Clone(cloneIncidenceSlot),
	}
	return cp
}

func cloneEdge(e *Edge) *Edge {
	cp := *e
	return &cp
}

func cloneIncidenceSlot(s *incidenceSlot) *incidenceSlot {
	cp := *s
	return &cp
}

func cloneClassMap(m map[label.Class]*bucket) map[label.Class]*bucket {
	out := make(map[label.Class]*bucket, len(m))
	for c, b := range m {
		out[c] = b.clone()
	}
	return out
}

// SnapshotStack holds a sequence of pushed deep copies, supporting the
// GP2 control constructs `try … then … else`, `if … then … else`, and
// `P!` by enabling speculative execution and rollback.
//
// Unlike the reference implementation's process-wide global, a
// SnapshotStack is an explicit caller-owned value per spec §9's design
// note, so multiple independent evaluations never share one stack.
//
// SnapshotStack carries no internal synchronization, consistent with
// Graph's single-threaded model.
type SnapshotStack struct {
	frames []*Graph
}

// NewSnapshotStack returns an empty stack.
func NewSnapshotStack() *SnapshotStack {
	return &SnapshotStack{}
}

// CopyGraph deep-copies g and pushes the copy on the stack, returning
// it so the caller can continue speculative execution against the
// copy.
//
// Complexity: O(NumberOfNodes(g) + NumberOfEdges(g)).
func (s *SnapshotStack) CopyGraph(g *Graph) *Graph {
	cp := g.Clone()
	s.frames = append(s.frames, cp)

	return cp
}

// RestoreGraph discards current and pops the most recent snapshot,
// returning it as the new working graph.
//
// Fails with ErrEmptyStack if no snapshot is pending.
//
// Complexity: O(1); current is left for the garbage collector to
// reclaim rather than explicitly freed, unlike the C reference.
func (s *SnapshotStack) RestoreGraph(current *Graph) (*Graph, error) {
	_ = current

	n := len(s.frames)
	if n == 0 {
		return nil, ErrEmptyStack
	}

	prior := s.frames[n-1]
	s.frames = s.frames[:n-1]

	return prior, nil
}

// Free drops every remaining snapshot. Go's garbage collector reclaims
// them; Free exists so callers have a symmetric counterpart to
// CopyGraph/RestoreGraph at the end of an evaluation.
func (s *SnapshotStack) Free() {
	s.frames = nil
}

// Depth returns the number of snapshots currently on the stack.
func (s *SnapshotStack) Depth() int {
	return len(s.frames)
}
