// File: methods_edges.go
// Role: edge mutation and query surface (spec §4.2), including the
// incidence-slot bookkeeping described in spec §4.2's "Incidence
// slots" subsection.
package hostgraph

import (
	"fmt"
	"iter"

	"github.com/gp2lang/gp2core/label"
	"github.com/gp2lang/gp2core/slotstore"
)

// AddEdge creates an edge between source and target and wires its
// incidence slots.
//
// Behavior highlights:
//   - source and target must be live node handles in g; otherwise
//     ErrNodeNotFound.
//   - Fails with ErrLabelTooLong if lbl's atom list has more than 5
//     elements.
//   - Fails with ErrMaxEdgesExceeded / ErrMaxIncidentEdgesExceeded if
//     the relevant ceiling (see WithMaxEdges,
//     WithMaxIncidentEdgesPerNode) would be exceeded; state is
//     unchanged.
//   - Otherwise inserts into the edge container, inserts an incidence
//     slot into source's out-incidence and target's in-incidence,
//     increments both degrees, and prepends onto the edges-by-class
//     bucket.
//
// Complexity: O(1).
func (g *Graph) AddEdge(bidirectional bool, lbl label.Label, source, target int) (int, error) {
	srcNode, err := g.GetNode(source)
	if err != nil {
		return 0, fmt.Errorf("hostgraph: AddEdge: source: %w", err)
	}
	tgtNode, err := g.GetNode(target)
	if err != nil {
		return 0, fmt.Errorf("hostgraph: AddEdge: target: %w", err)
	}

	if g.maxEdges > 0 && g.edges.Count() >= g.maxEdges {
		return 0, ErrMaxEdgesExceeded
	}
	if g.maxIncidentEdgesPerNode > 0 {
		if srcNode.outEdges.Count() >= g.maxIncidentEdgesPerNode ||
			tgtNode.inEdges.Count() >= g.maxIncidentEdgesPerNode {
			return 0, ErrMaxIncidentEdgesExceeded
		}
	}

	class, err := label.ClassOf(lbl)
	if err != nil {
		return 0, fmt.Errorf("hostgraph: AddEdge: %w", err)
	}

	e := &Edge{
		bidirectional: bidirectional,
		lbl:           lbl,
		class:         class,
		source:        source,
		target:        target,
	}
	idx := g.edges.Insert(e)

	srcNode.outEdges.Insert(&incidenceSlot{edgeIndex: idx})
	tgtNode.inEdges.Insert(&incidenceSlot{edgeIndex: idx})
	srcNode.outDegree++
	tgtNode.inDegree++

	bucketFor(g.edgesByClass, class).prepend(idx)

	return idx, nil
}

// RemoveEdge removes the edge at index: scans the source's
// out-incidence to find the slot holding it, nulls that slot (applying
// the trailing-slot collapse rule), does the same at the target's
// in-incidence, decrements both degrees, removes the edge from its
// class bucket, and removes it from the edge container.
//
// Complexity: O(out-degree of source) to locate the incidence slot,
// O(1) thereafter.
func (g *Graph) RemoveEdge(index int) error {
	e, err := g.edges.Get(index)
	if err != nil {
		return fmt.Errorf("hostgraph: RemoveEdge: %w: %w", ErrEdgeNotFound, err)
	}

	srcNode, err := g.nodes.Get(e.source)
	if err != nil {
		return fmt.Errorf("hostgraph: RemoveEdge: source: %w: %w", ErrNodeNotFound, err)
	}
	tgtNode, err := g.nodes.Get(e.target)
	if err != nil {
		return fmt.Errorf("hostgraph: RemoveEdge: target: %w: %w", ErrNodeNotFound, err)
	}

	if slot, ok := findIncidenceSlot(srcNode.outEdges, index); ok {
		_ = srcNode.outEdges.Remove(slot)
		srcNode.outDegree--
	}
	if slot, ok := findIncidenceSlot(tgtNode.inEdges, index); ok {
		_ = tgtNode.inEdges.Remove(slot)
		tgtNode.inDegree--
	}

	bucketFor(g.edgesByClass, e.class).remove(index)
	dropIfEmpty(g.edgesByClass, e.class)

	_ = g.edges.Remove(index)

	return nil
}

// RelabelEdge applies spec §4.2's relabel_edge: analogous to
// RelabelNode, but edges have no root flag — toggleBidirectional flips
// the bidirectional flag in its place.
//
// Complexity: O(1).
func (g *Graph) RelabelEdge(index int, newLbl label.Label, changeLabel, toggleBidirectional bool) error {
	e, err := g.edges.Get(index)
	if err != nil {
		return fmt.Errorf("hostgraph: RelabelEdge: %w: %w", ErrEdgeNotFound, err)
	}

	if changeLabel {
		newClass, cerr := label.ClassOf(newLbl)
		if cerr != nil {
			return fmt.Errorf("hostgraph: RelabelEdge: %w", cerr)
		}
		if newClass != e.class {
			bucketFor(g.edgesByClass, e.class).remove(index)
			dropIfEmpty(g.edgesByClass, e.class)
			bucketFor(g.edgesByClass, newClass).prepend(index)
		}
		e.lbl = newLbl
		e.class = newClass
	}

	if toggleBidirectional {
		e.bidirectional = !e.bidirectional
	}

	return nil
}

// GetEdge returns the edge at index, or ErrEdgeNotFound if index is
// out of range or names an empty slot.
//
// Complexity: O(1).
func (g *Graph) GetEdge(index int) (*Edge, error) {
	e, err := g.edges.Get(index)
	if err != nil {
		return nil, fmt.Errorf("hostgraph: GetEdge: %w: %w", ErrEdgeNotFound, err)
	}
	return e, nil
}

// Source returns the node index at edge's source endpoint.
//
// Complexity: O(1).
func (g *Graph) Source(edge int) (int, error) {
	e, err := g.GetEdge(edge)
	if err != nil {
		return 0, err
	}
	return e.source, nil
}

// Target returns the node index at edge's target endpoint.
//
// Complexity: O(1).
func (g *Graph) Target(edge int) (int, error) {
	e, err := g.GetEdge(edge)
	if err != nil {
		return 0, err
	}
	return e.target, nil
}

// Edges returns an iterator over (index, *Edge) for every live edge,
// in ascending index order.
//
// Complexity: O(HighWater) to exhaust.
func (g *Graph) Edges() iter.Seq2[int, *Edge] {
	return g.edges.All()
}

// findIncidenceSlot scans c for the occupied slot whose edgeIndex
// equals edgeIdx, returning that slot's index. Ascending order makes
// this deterministic, matching spec §4.2's "scans the source's
// out-incidence to find the slot holding this edge."
func findIncidenceSlot(c *slotstore.Container[*incidenceSlot], edgeIdx int) (int, bool) {
	for slotIdx, s := range c.All() {
		if s.edgeIndex == edgeIdx {
			return slotIdx, true
		}
	}
	return 0, false
}
