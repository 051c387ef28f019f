// File: topologies.go
// Role: deterministic topology constructors for spec §8's scenarios,
// grounded on lvlath/builder/impl_path.go, impl_star.go, and the
// cycle construction lvlath's builder package documents for Cycle(n).
package fixture

import (
	"fmt"

	"github.com/gp2lang/gp2core/hostgraph"
	"github.com/gp2lang/gp2core/label"
)

const minTopologyNodes = 2

// Path returns a Constructor that builds a simple path of n nodes
// (n0 root) with empty labels: n0 -> n1 -> ... -> n(n-1).
//
// Complexity: O(n) nodes + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *hostgraph.Graph, _ *config) error {
		if n < minTopologyNodes {
			return fmt.Errorf("fixture: Path: n=%d < min=%d: %w", n, minTopologyNodes, ErrTooFewNodes)
		}

		nodes := make([]int, n)
		for i := 0; i < n; i++ {
			idx, err := g.AddNode(i == 0, label.Empty())
			if err != nil {
				return fmt.Errorf("fixture: Path: AddNode(%d): %w", i, err)
			}
			nodes[i] = idx
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(false, label.Empty(), nodes[i-1], nodes[i]); err != nil {
				return fmt.Errorf("fixture: Path: AddEdge(%d->%d): %w", i-1, i, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star of n nodes: node 0 is
// the root hub, connected by an outgoing edge to each of the n-1
// leaves.
//
// Complexity: O(n) nodes + O(n-1) edges.
func Star(n int) Constructor {
	return func(g *hostgraph.Graph, _ *config) error {
		if n < minTopologyNodes {
			return fmt.Errorf("fixture: Star: n=%d < min=%d: %w", n, minTopologyNodes, ErrTooFewNodes)
		}

		hub, err := g.AddNode(true, label.Empty())
		if err != nil {
			return fmt.Errorf("fixture: Star: AddNode(hub): %w", err)
		}
		for i := 1; i < n; i++ {
			leaf, err := g.AddNode(false, label.Empty())
			if err != nil {
				return fmt.Errorf("fixture: Star: AddNode(leaf %d): %w", i, err)
			}
			if _, err := g.AddEdge(false, label.Empty(), hub, leaf); err != nil {
				return fmt.Errorf("fixture: Star: AddEdge(hub->leaf %d): %w", i, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple n-cycle (n >= 3):
// n0 root, edges n0->n1->...->n(n-1)->n0.
//
// Complexity: O(n) nodes + O(n) edges.
func Cycle(n int) Constructor {
	const minCycleNodes = 3
	return func(g *hostgraph.Graph, _ *config) error {
		if n < minCycleNodes {
			return fmt.Errorf("fixture: Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
		}

		nodes := make([]int, n)
		for i := 0; i < n; i++ {
			idx, err := g.AddNode(i == 0, label.Empty())
			if err != nil {
				return fmt.Errorf("fixture: Cycle: AddNode(%d): %w", i, err)
			}
			nodes[i] = idx
		}
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			if _, err := g.AddEdge(false, label.Empty(), nodes[i], nodes[next]); err != nil {
				return fmt.Errorf("fixture: Cycle: AddEdge(%d->%d): %w", i, next, err)
			}
		}

		return nil
	}
}
