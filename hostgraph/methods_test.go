package hostgraph

import (
	"errors"
	"testing"

	"github.com/gp2lang/gp2core/label"
)

func buildChain(t *testing.T) (*Graph, []int, []int) {
	t.Helper()
	g := New()

	var nodes []int
	for i := 0; i < 5; i++ {
		idx, err := g.AddNode(i == 0, label.Empty())
		if err != nil {
			t.Fatalf("AddNode(%d): %v", i, err)
		}
		nodes = append(nodes, idx)
	}

	var edges []int
	for i := 0; i < 4; i++ {
		idx, err := g.AddEdge(false, label.Empty(), nodes[i], nodes[i+1])
		if err != nil {
			t.Fatalf("AddEdge(%d): %v", i, err)
		}
		edges = append(edges, idx)
	}

	return g, nodes, edges
}

// S1 (structural half; textual form is checked in package serialize).
func TestScenarioS1BuildStructure(t *testing.T) {
	g, nodes, edges := buildChain(t)

	if g.NumberOfNodes() != 5 || g.NumberOfEdges() != 4 {
		t.Fatalf("got %d nodes / %d edges, want 5/4", g.NumberOfNodes(), g.NumberOfEdges())
	}
	if roots := g.RootNodes(); len(roots) != 1 || roots[0] != nodes[0] {
		t.Fatalf("RootNodes() = %v, want [%d]", roots, nodes[0])
	}
	for i, e := range edges {
		src, _ := g.Source(e)
		tgt, _ := g.Target(e)
		if src != nodes[i] || tgt != nodes[i+1] {
			t.Fatalf("edge %d: source/target = %d/%d, want %d/%d", e, src, tgt, nodes[i], nodes[i+1])
		}
	}
	if !g.Valid() {
		t.Fatalf("graph invalid: %v", g.Validate())
	}
}

// S2 — slot reuse.
func TestScenarioS2SlotReuse(t *testing.T) {
	g, nodes, edges := buildChain(t)

	if err := g.RemoveEdge(edges[1]); err != nil {
		t.Fatalf("RemoveEdge(%d): %v", edges[1], err)
	}

	newIdx, err := g.AddEdge(false, label.Empty(), nodes[1], nodes[3])
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if newIdx != edges[1] {
		t.Fatalf("reused edge index = %d, want %d", newIdx, edges[1])
	}
	if !g.Valid() {
		t.Fatalf("graph invalid after reuse: %v", g.Validate())
	}
}

// S3 — dangling-incidence guard.
func TestScenarioS3DanglingIncidenceGuard(t *testing.T) {
	g, nodes, _ := buildChain(t)

	err := g.RemoveNode(nodes[1])
	if !errors.Is(err, ErrDanglingIncidence) {
		t.Fatalf("RemoveNode(incident node) = %v, want ErrDanglingIncidence", err)
	}
	if g.NumberOfNodes() != 5 {
		t.Fatalf("NumberOfNodes() = %d, want 5 (unchanged)", g.NumberOfNodes())
	}
	if !g.Valid() {
		t.Fatalf("graph invalid: %v", g.Validate())
	}
}

// S4 — relabel re-indexes the class buckets.
func TestScenarioS4RelabelReindexes(t *testing.T) {
	g, nodes, _ := buildChain(t)
	n0 := nodes[0]

	contains := func(c label.Class, idx int) bool {
		for _, v := range g.NodesByClass(c) {
			if v == idx {
				return true
			}
		}
		return false
	}

	if !contains(label.ClassEmpty, n0) {
		t.Fatalf("n0 should start in ClassEmpty")
	}

	newLbl := label.Label{List: []label.Atom{label.IntAtom(42)}}
	if err := g.RelabelNode(n0, newLbl, true, false); err != nil {
		t.Fatalf("RelabelNode: %v", err)
	}

	if contains(label.ClassEmpty, n0) {
		t.Fatalf("n0 should no longer be in ClassEmpty")
	}
	if !contains(label.ClassInt, n0) {
		t.Fatalf("n0 should now be in ClassInt")
	}
	node, err := g.GetNode(n0)
	if err != nil {
		t.Fatalf("GetNode: %v", err)
	}
	if node.Class() != label.ClassInt {
		t.Fatalf("node.Class() = %v, want ClassInt", node.Class())
	}
}

func TestRelabelNodeToggleRoot(t *testing.T) {
	g := New()
	n, err := g.AddNode(false, label.Empty())
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	if err := g.RelabelNode(n, label.Empty(), false, true); err != nil {
		t.Fatalf("RelabelNode: %v", err)
	}
	node, _ := g.GetNode(n)
	if !node.Root() {
		t.Fatalf("root flag not toggled on")
	}
	if got := g.RootNodes(); len(got) != 1 || got[0] != n {
		t.Fatalf("RootNodes() = %v, want [%d]", got, n)
	}

	if err := g.RelabelNode(n, label.Empty(), false, true); err != nil {
		t.Fatalf("RelabelNode: %v", err)
	}
	node, _ = g.GetNode(n)
	if node.Root() {
		t.Fatalf("root flag not toggled off")
	}
	if got := g.RootNodes(); len(got) != 0 {
		t.Fatalf("RootNodes() = %v, want empty", got)
	}
}

func TestAddEdgeRejectsDeadEndpoints(t *testing.T) {
	g := New()
	n, _ := g.AddNode(false, label.Empty())

	if _, err := g.AddEdge(false, label.Empty(), n, 99); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("AddEdge(dead target) = %v, want ErrNodeNotFound", err)
	}
	if g.NumberOfEdges() != 0 {
		t.Fatalf("NumberOfEdges() = %d, want 0", g.NumberOfEdges())
	}
}

func TestGetNodeOutOfRangeAtHighWater(t *testing.T) {
	g := New()
	n, _ := g.AddNode(false, label.Empty())

	if _, err := g.GetNode(n + 1); err == nil {
		t.Fatalf("GetNode(high-water) should fail")
	}
}

func TestGetNodeEmptySlotAfterMiddleRemoval(t *testing.T) {
	g := New()
	_, _ = g.AddNode(false, label.Empty())
	b, _ := g.AddNode(false, label.Empty())
	_, _ = g.AddNode(false, label.Empty())

	if err := g.RemoveNode(b); err != nil {
		t.Fatalf("RemoveNode(%d): %v", b, err)
	}
	if _, err := g.GetNode(b); err == nil {
		t.Fatalf("GetNode(freed middle slot) should fail")
	}
}

func TestLabelTooLongRejectsBeforeInstallation(t *testing.T) {
	g := New()
	list := make([]label.Atom, 6)
	for i := range list {
		list[i] = label.IntAtom(i)
	}
	if _, err := g.AddNode(false, label.Label{List: list}); !errors.Is(err, label.ErrLabelTooLong) {
		t.Fatalf("AddNode(too-long label) = %v, want ErrLabelTooLong", err)
	}
	if g.NumberOfNodes() != 0 {
		t.Fatalf("NumberOfNodes() = %d, want 0", g.NumberOfNodes())
	}
}

func TestMaxNodesCeiling(t *testing.T) {
	g := New(WithMaxNodes(1))
	if _, err := g.AddNode(false, label.Empty()); err != nil {
		t.Fatalf("AddNode(1st): %v", err)
	}
	if _, err := g.AddNode(false, label.Empty()); !errors.Is(err, ErrMaxNodesExceeded) {
		t.Fatalf("AddNode(2nd) = %v, want ErrMaxNodesExceeded", err)
	}
}

func TestMaxIncidentEdgesCeiling(t *testing.T) {
	g := New(WithMaxIncidentEdgesPerNode(1))
	a, _ := g.AddNode(false, label.Empty())
	b, _ := g.AddNode(false, label.Empty())
	c, _ := g.AddNode(false, label.Empty())

	if _, err := g.AddEdge(false, label.Empty(), a, b); err != nil {
		t.Fatalf("AddEdge(1st): %v", err)
	}
	if _, err := g.AddEdge(false, label.Empty(), a, c); !errors.Is(err, ErrMaxIncidentEdgesExceeded) {
		t.Fatalf("AddEdge(2nd) = %v, want ErrMaxIncidentEdgesExceeded", err)
	}
}
