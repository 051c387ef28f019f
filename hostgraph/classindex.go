// File: classindex.go
// Role: the label-class secondary index (spec §4.3) and the root-node
// set, both realized with the same prepend/remove-by-key primitive.
//
// bucket backs a container/list.List for O(1) prepend plus a map for
// O(1) removal-by-key, grounded on the stdlib rather than a
// third-party ordered set since none of the example repositories in
// the retrieval pack carry one (see DESIGN.md). Traversal order is
// list order (most-recently-prepended first) — deterministic for a
// deterministic operation sequence, satisfying spec §3's "traversal
// order must be deterministic for tests" without requiring index
// order.
package hostgraph

import (
	"container/list"

	"github.com/gp2lang/gp2core/label"
)

type bucket struct {
	order *list.List
	elems map[int]*list.Element
}

func newBucket() *bucket {
	return &bucket{
		order: list.New(),
		elems: make(map[int]*list.Element),
	}
}

// prepend inserts idx at the front. No-op if idx is already present.
func (b *bucket) prepend(idx int) {
	if _, ok := b.elems[idx]; ok {
		return
	}
	b.elems[idx] = b.order.PushFront(idx)
}

// remove deletes idx if present. No-op otherwise.
func (b *bucket) remove(idx int) {
	e, ok := b.elems[idx]
	if !ok {
		return
	}
	b.order.Remove(e)
	delete(b.elems, idx)
}

// contains reports whether idx is currently a member.
func (b *bucket) contains(idx int) bool {
	_, ok := b.elems[idx]
	return ok
}

// len returns the member count.
func (b *bucket) len() int { return b.order.Len() }

// values returns the members in list order (front to back).
func (b *bucket) values() []int {
	out := make([]int, 0, b.order.Len())
	for e := b.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}
	return out
}

// clone returns an independent deep copy with identical order and
// membership.
func (b *bucket) clone() *bucket {
	nb := newBucket()
	for e := b.order.Back(); e != nil; e = e.Prev() {
		nb.prepend(e.Value.(int))
	}
	return nb
}

// bucketFor returns the bucket for class c in m, creating it on first
// use.
func bucketFor(m map[label.Class]*bucket, c label.Class) *bucket {
	b, ok := m[c]
	if !ok {
		b = newBucket()
		m[c] = b
	}
	return b
}

// dropIfEmpty deletes m's entry for c once its bucket has no members,
// per spec §4.2's "collapsing the hash entry when empty."
func dropIfEmpty(m map[label.Class]*bucket, c label.Class) {
	if b, ok := m[c]; ok && b.len() == 0 {
		delete(m, c)
	}
}

// NodesByClass returns the indices of live nodes whose current class
// is c, in bucket order. Total: an absent class reports an empty
// slice, never an error.
//
// Complexity: O(count of nodes in class c).
func (g *Graph) NodesByClass(c label.Class) []int {
	b, ok := g.nodesByClass[c]
	if !ok {
		return nil
	}
	return b.values()
}

// EdgesByClass returns the indices of live edges whose current class
// is c, in bucket order.
//
// Complexity: O(count of edges in class c).
func (g *Graph) EdgesByClass(c label.Class) []int {
	b, ok := g.edgesByClass[c]
	if !ok {
		return nil
	}
	return b.values()
}

// RootNodes returns the indices of every node whose root flag is set,
// in bucket order (most-recently-rooted first).
//
// Complexity: O(count of root nodes).
func (g *Graph) RootNodes() []int {
	return g.roots.values()
}
