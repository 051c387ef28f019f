// File: mutate.go
// Role: RandomOpSequence, a seeded generator of add_node/add_edge/
// remove_node/remove_edge/relabel_* sequences for spec §8's "arbitrary
// sequences" property tests. Grounded on lvlath/builder/impl_random_sparse.go's
// seeded *rand.Rand pattern (cfg.rng, deterministic trial order per seed).
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/gp2lang/gp2core/hostgraph"
	"github.com/gp2lang/gp2core/label"
)

// RandomOpSequence returns a Constructor that applies count mutating
// operations, chosen uniformly among add_node / add_edge / remove_node
// / remove_edge / relabel_node / relabel_edge, against whatever graph
// Build hands it. Node/edge arguments are drawn uniformly from the
// graph's current live handles; operations the graph rejects (such as
// remove_node on a node with incident edges) exercise the error paths.
//
// Requires cfg.rng != nil (set via WithSeed or WithRand); otherwise
// ErrNeedRandSource.
//
// Determinism: identical for a fixed seed, count, and prior graph
// state — the trial order is the sequential draw order from cfg.rng.
//
// Complexity: O(count), plus O(live node/edge count) per op to resolve
// the k-th live handle.
func RandomOpSequence(count int) Constructor {
	return func(g *hostgraph.Graph, cfg *config) error {
		if cfg.rng == nil {
			return fmt.Errorf("fixture: RandomOpSequence: rng is required: %w", ErrNeedRandSource)
		}

		for i := 0; i < count; i++ {
			applyOneRandomOp(g, cfg.rng)
		}

		return nil
	}
}

func applyOneRandomOp(g *hostgraph.Graph, rng *rand.Rand) {
	kind := rng.Intn(6)

	if g.NumberOfNodes() == 0 {
		kind = 0
	}

	switch kind {
	case 0:
		_, _ = g.AddNode(rng.Intn(4) == 0, randomLabel(rng))
	case 1:
		src, ok1 := nthLiveNode(g, rng.Intn(g.NumberOfNodes()))
		tgt, ok2 := nthLiveNode(g, rng.Intn(g.NumberOfNodes()))
		if ok1 && ok2 {
			_, _ = g.AddEdge(rng.Intn(3) == 0, randomLabel(rng), src, tgt)
		}
	case 2:
		if idx, ok := nthLiveNode(g, rng.Intn(g.NumberOfNodes())); ok {
			_ = g.RemoveNode(idx)
		}
	case 3:
		if g.NumberOfEdges() == 0 {
			return
		}
		if idx, ok := nthLiveEdge(g, rng.Intn(g.NumberOfEdges())); ok {
			_ = g.RemoveEdge(idx)
		}
	case 4:
		if idx, ok := nthLiveNode(g, rng.Intn(g.NumberOfNodes())); ok {
			_ = g.RelabelNode(idx, randomLabel(rng), rng.Intn(2) == 0, rng.Intn(2) == 0)
		}
	default:
		if g.NumberOfEdges() == 0 {
			return
		}
		if idx, ok := nthLiveEdge(g, rng.Intn(g.NumberOfEdges())); ok {
			_ = g.RelabelEdge(idx, randomLabel(rng), rng.Intn(2) == 0, rng.Intn(2) == 0)
		}
	}
}

func nthLiveNode(g *hostgraph.Graph, n int) (int, bool) {
	i := 0
	for idx := range g.Nodes() {
		if i == n {
			return idx, true
		}
		i++
	}
	return 0, false
}

func nthLiveEdge(g *hostgraph.Graph, n int) (int, bool) {
	i := 0
	for idx := range g.Edges() {
		if i == n {
			return idx, true
		}
		i++
	}
	return 0, false
}

// randomLabel draws a small label that always classifies successfully
// (never triggers ErrLabelTooLong): empty, a single int, a two-atom
// list, or a single atomic variable, so a long RandomOpSequence run
// visits the empty, int, list2 and atomic_var class buckets.
func randomLabel(rng *rand.Rand) label.Label {
	switch rng.Intn(4) {
	case 0:
		return label.Empty()
	case 1:
		return label.Label{List: []label.Atom{label.IntAtom(rng.Int63n(1000))}}
	case 2:
		return label.Label{List: []label.Atom{label.StringAtom("s"), label.IntAtom(rng.Int63n(10))}}
	default:
		return label.Label{List: []label.Atom{label.VarAtom{Name: "x"}}}
	}
}
