// File: methods_nodes.go
// Role: node mutation and query surface (spec §4.2).
package hostgraph

import (
	"fmt"
	"iter"

	"github.com/gp2lang/gp2core/label"
	"github.com/gp2lang/gp2core/slotstore"
)

// AddNode creates a node with the given root flag and label, computes
// its label class, inserts it into the node container, and prepends it
// onto the nodes-by-class bucket for that class (and the root bucket,
// if root). Returns the new node's stable index.
//
// Behavior highlights:
//   - lbl may be label.Empty() for an unlabelled node.
//   - Fails with ErrLabelTooLong if lbl's atom list has more than 5
//     elements; the node is not created.
//   - Fails with ErrMaxNodesExceeded if the graph was built with
//     WithMaxNodes and is already at that ceiling.
//
// Complexity: O(1).
func (g *Graph) AddNode(root bool, lbl label.Label) (int, error) {
	if g.maxNodes > 0 && g.nodes.Count() >= g.maxNodes {
		return 0, ErrMaxNodesExceeded
	}

	class, err := label.ClassOf(lbl)
	if err != nil {
		return 0, fmt.Errorf("hostgraph: AddNode: %w", err)
	}

	n := &Node{
		root:     root,
		lbl:      lbl,
		class:    class,
		outEdges: slotstore.New[*incidenceSlot](),
		inEdges:  slotstore.New[*incidenceSlot](),
	}
	idx := g.nodes.Insert(n)

	bucketFor(g.nodesByClass, class).prepend(idx)
	if root {
		g.roots.prepend(idx)
	}

	return idx, nil
}

// RemoveNode removes the node at index from the graph.
//
// Behavior highlights:
//   - Fails with ErrDanglingIncidence if the node's in-degree plus
//     out-degree is nonzero; state is unchanged.
//   - Fails with ErrNodeNotFound for a bad index; state is unchanged.
//   - Otherwise removes the node from its class bucket (collapsing the
//     bucket's map entry if it becomes empty), from the root bucket if
//     present, and from the node container.
//
// Complexity: O(1).
func (g *Graph) RemoveNode(index int) error {
	n, err := g.nodes.Get(index)
	if err != nil {
		return fmt.Errorf("hostgraph: RemoveNode: %w: %w", ErrNodeNotFound, err)
	}
	if n.inDegree+n.outDegree > 0 {
		g.diag.Logger().Warn("remove_node rejected", "node", index, "in_degree", n.inDegree, "out_degree", n.outDegree)
		return ErrDanglingIncidence
	}

	bucketFor(g.nodesByClass, n.class).remove(index)
	dropIfEmpty(g.nodesByClass, n.class)
	if n.root {
		g.roots.remove(index)
	}

	// Remove cannot fail here: Get already proved index is live.
	_ = g.nodes.Remove(index)

	return nil
}

// RelabelNode applies spec §4.2's relabel_node. If toggleRoot is true,
// the root flag is flipped and the root bucket updated accordingly. If
// changeLabel is true, the node's label is replaced with newLbl (or
// the empty sentinel), its class recomputed, and — if the class
// changed — the node is moved between class buckets atomically (remove
// from the old bucket, then prepend to the new one).
//
// Complexity: O(1).
func (g *Graph) RelabelNode(index int, newLbl label.Label, changeLabel, toggleRoot bool) error {
	n, err := g.nodes.Get(index)
	if err != nil {
		return fmt.Errorf("hostgraph: RelabelNode: %w: %w", ErrNodeNotFound, err)
	}

	if changeLabel {
		newClass, cerr := label.ClassOf(newLbl)
		if cerr != nil {
			return fmt.Errorf("hostgraph: RelabelNode: %w", cerr)
		}
		if newClass != n.class {
			bucketFor(g.nodesByClass, n.class).remove(index)
			dropIfEmpty(g.nodesByClass, n.class)
			bucketFor(g.nodesByClass, newClass).prepend(index)
		}
		n.lbl = newLbl
		n.class = newClass
	}

	if toggleRoot {
		n.root = !n.root
		if n.root {
			g.roots.prepend(index)
		} else {
			g.roots.remove(index)
		}
	}

	return nil
}

// GetNode returns the node at index, or ErrNodeNotFound if index is
// out of range or names an empty slot.
//
// Complexity: O(1).
func (g *Graph) GetNode(index int) (*Node, error) {
	n, err := g.nodes.Get(index)
	if err != nil {
		return nil, fmt.Errorf("hostgraph: GetNode: %w: %w", ErrNodeNotFound, err)
	}
	return n, nil
}

// InDegree returns the node's in-degree.
//
// Complexity: O(1).
func (g *Graph) InDegree(index int) (int, error) {
	n, err := g.GetNode(index)
	if err != nil {
		return 0, err
	}
	return n.inDegree, nil
}

// OutDegree returns the node's out-degree.
//
// Complexity: O(1).
func (g *Graph) OutDegree(index int) (int, error) {
	n, err := g.GetNode(index)
	if err != nil {
		return 0, err
	}
	return n.outDegree, nil
}

// OutEdge returns the edge occupying the k-th slot of node index's
// out-incidence container.
//
// Complexity: O(1).
func (g *Graph) OutEdge(index, k int) (*Edge, error) {
	n, err := g.GetNode(index)
	if err != nil {
		return nil, err
	}
	slot, err := n.outEdges.Get(k)
	if err != nil {
		return nil, fmt.Errorf("hostgraph: OutEdge: %w: %w", ErrEdgeNotFound, err)
	}
	return g.GetEdge(slot.edgeIndex)
}

// InEdge returns the edge occupying the k-th slot of node index's
// in-incidence container.
//
// Complexity: O(1).
func (g *Graph) InEdge(index, k int) (*Edge, error) {
	n, err := g.GetNode(index)
	if err != nil {
		return nil, err
	}
	slot, err := n.inEdges.Get(k)
	if err != nil {
		return nil, fmt.Errorf("hostgraph: InEdge: %w: %w", ErrEdgeNotFound, err)
	}
	return g.GetEdge(slot.edgeIndex)
}

// Nodes returns an iterator over (index, *Node) for every live node,
// in ascending index order.
//
// Complexity: O(HighWater) to exhaust.
func (g *Graph) Nodes() iter.Seq2[int, *Node] {
	return g.nodes.All()
}
