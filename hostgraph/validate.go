// File: validate.go
// Role: the validation predicate (spec §4.5), checking invariants 1-7
// of spec §3 directly against internal container state.
package hostgraph

import "fmt"

// Violation describes one failed invariant, for diagnostics and tests.
type Violation struct {
	Invariant int
	Detail    string
}

func (v Violation) String() string {
	return fmt.Sprintf("invariant %d: %s", v.Invariant, v.Detail)
}

// Validate walks g and checks invariants 1-7 from spec §3, returning
// one Violation per failure. A nil/empty result means g is valid. Each
// failure is also written to g's diagnostic sinks (WithDiagSinks): a
// one-line summary to the console stream, a structured record per
// violation to the log stream.
//
// Complexity: O(NumberOfNodes + NumberOfEdges).
func (g *Graph) Validate() []Violation {
	violations := g.validate()
	if len(violations) > 0 {
		g.diag.Printf("hostgraph: validate: %d invariant violation(s)", len(violations))
		for _, v := range violations {
			g.diag.Logger().Error("invariant violation", "invariant", v.Invariant, "detail", v.Detail)
		}
	}
	return violations
}

func (g *Graph) validate() []Violation {
	var violations []Violation

	// 1: every occupied node slot's recorded index equals the slot.
	for i, n := range g.nodes.All() {
		if n.index != i {
			violations = append(violations, Violation{1, fmt.Sprintf("node slot %d holds node recorded as %d", i, n.index)})
		}
	}

	// 2: every empty slot below the high-water mark appears exactly
	// once in the free-slot stack. slotstore.Container enforces this
	// internally (Remove either collapses the trailing slot or pushes
	// exactly one free entry); re-derive it here from FreeSlots/HighWater
	// for defense in depth.
	violations = append(violations, checkFreeSlotPartition(2, "node", g.nodes.HighWater(), g.nodes.FreeSlots(), func(i int) bool { return g.nodes.Occupied(i) })...)
	violations = append(violations, checkFreeSlotPartition(2, "edge", g.edges.HighWater(), g.edges.FreeSlots(), func(i int) bool { return g.edges.Occupied(i) })...)

	// 3: number_of_nodes/edges equals the occupied-slot count. True by
	// construction of Count(), kept as an explicit re-derivation.
	occNodes, occEdges := 0, 0
	for range g.nodes.All() {
		occNodes++
	}
	for range g.edges.All() {
		occEdges++
	}
	if occNodes != g.NumberOfNodes() {
		violations = append(violations, Violation{3, fmt.Sprintf("NumberOfNodes() = %d, occupied slots = %d", g.NumberOfNodes(), occNodes)})
	}
	if occEdges != g.NumberOfEdges() {
		violations = append(violations, Violation{3, fmt.Sprintf("NumberOfEdges() = %d, occupied slots = %d", g.NumberOfEdges(), occEdges)})
	}

	// 4 & 5: each edge appears exactly once in its source's
	// out-incidence and its target's in-incidence; degrees match
	// populated incidence counts.
	outCount := map[int]int{}
	inCount := map[int]int{}
	for ei, e := range g.edges.All() {
		srcNode, err := g.nodes.Get(e.source)
		if err != nil {
			violations = append(violations, Violation{4, fmt.Sprintf("edge %d: source %d is not live", ei, e.source)})
		} else if n, ok := findIncidenceSlot(srcNode.outEdges, ei); !ok {
			violations = append(violations, Violation{4, fmt.Sprintf("edge %d missing from source %d's out-incidence", ei, e.source)})
		} else {
			_ = n
			outCount[e.source]++
		}

		tgtNode, err := g.nodes.Get(e.target)
		if err != nil {
			violations = append(violations, Violation{4, fmt.Sprintf("edge %d: target %d is not live", ei, e.target)})
		} else if n, ok := findIncidenceSlot(tgtNode.inEdges, ei); !ok {
			violations = append(violations, Violation{4, fmt.Sprintf("edge %d missing from target %d's in-incidence", ei, e.target)})
		} else {
			_ = n
			inCount[e.target]++
		}
	}
	for ni, n := range g.nodes.All() {
		if pop := n.outEdges.Count(); n.outDegree != pop || pop != outCount[ni] {
			violations = append(violations, Violation{5, fmt.Sprintf("node %d: outDegree %d, populated out-incidence %d, edges sourced here %d", ni, n.outDegree, pop, outCount[ni])})
		}
		if pop := n.inEdges.Count(); n.inDegree != pop || pop != inCount[ni] {
			violations = append(violations, Violation{5, fmt.Sprintf("node %d: inDegree %d, populated in-incidence %d, edges targeting here %d", ni, n.inDegree, pop, inCount[ni])})
		}
	}

	// 6: class-bucket membership matches each entity's current class,
	// exactly once, absent from every other bucket.
	for ni, n := range g.nodes.All() {
		if _, ok := g.nodesByClass[n.class]; !ok {
			violations = append(violations, Violation{6, fmt.Sprintf("node %d: class %v has no bucket", ni, n.class)})
		}
		for c, b := range g.nodesByClass {
			if b.contains(ni) != (c == n.class) {
				violations = append(violations, Violation{6, fmt.Sprintf("node %d: class %v, bucket %v contains=%v", ni, n.class, c, b.contains(ni))})
			}
		}
	}
	for ei, e := range g.edges.All() {
		if _, ok := g.edgesByClass[e.class]; !ok {
			violations = append(violations, Violation{6, fmt.Sprintf("edge %d: class %v has no bucket", ei, e.class)})
		}
		for c, b := range g.edgesByClass {
			if b.contains(ei) != (c == e.class) {
				violations = append(violations, Violation{6, fmt.Sprintf("edge %d: class %v, bucket %v contains=%v", ei, e.class, c, b.contains(ei))})
			}
		}
	}

	// 7: a node is in the root set iff its root flag is set.
	for ni, n := range g.nodes.All() {
		if g.roots.contains(ni) != n.root {
			violations = append(violations, Violation{7, fmt.Sprintf("node %d: root flag %v, in root bucket %v", ni, n.root, g.roots.contains(ni))})
		}
	}

	return violations
}

// Valid reports whether g passes every invariant check.
//
// Complexity: O(NumberOfNodes + NumberOfEdges).
func (g *Graph) Valid() bool {
	return len(g.Validate()) == 0
}

func checkFreeSlotPartition(invariant int, what string, highWater int, free []int, occupied func(int) bool) []Violation {
	var violations []Violation

	freeSet := make(map[int]int, len(free))
	for _, idx := range free {
		freeSet[idx]++
	}
	for idx, n := range freeSet {
		if n != 1 {
			violations = append(violations, Violation{invariant, fmt.Sprintf("%s slot %d appears %d times in the free-slot stack", what, idx, n)})
		}
	}
	for i := 0; i < highWater; i++ {
		occ := occupied(i)
		_, inFree := freeSet[i]
		if occ == inFree {
			violations = append(violations, Violation{invariant, fmt.Sprintf("%s slot %d: occupied=%v, in free-slot stack=%v", what, i, occ, inFree)})
		}
	}

	return violations
}
