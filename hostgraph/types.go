// File: types.go
// Role: Node, Edge, Graph, GraphOption, and the New constructor.
//
// This file plays the role lvlath/core/types.go plays for the teacher
// library: it declares the owned types, the functional options that
// configure a Graph before use, and the zero-value-unsafe constructor.
package hostgraph

import (
	"github.com/gp2lang/gp2core/diag"
	"github.com/gp2lang/gp2core/label"
	"github.com/gp2lang/gp2core/slotstore"
)

// incidenceSlot is one entry in a node's out- or in-incidence
// container: a weak reference (by index) to an edge. It carries no
// ownership — the edge container owns the Edge itself.
type incidenceSlot struct {
	index     int
	edgeIndex int
}

func (s *incidenceSlot) SetIndex(i int) { s.index = i }

// Node is a host-graph node: a stable index, a root flag, an owned
// label and its cached class, cached degrees, and two owned incidence
// containers.
type Node struct {
	index int
	root  bool

	lbl   label.Label
	class label.Class

	inDegree  int
	outDegree int

	outEdges *slotstore.Container[*incidenceSlot]
	inEdges  *slotstore.Container[*incidenceSlot]
}

// SetIndex implements slotstore.Indexed.
func (n *Node) SetIndex(i int) { n.index = i }

// Index returns the node's stable index.
func (n *Node) Index() int { return n.index }

// Root reports whether the node's root flag is set.
func (n *Node) Root() bool { return n.root }

// Label returns the node's owned label.
func (n *Node) Label() label.Label { return n.lbl }

// Class returns the node's cached label class.
func (n *Node) Class() label.Class { return n.class }

// InDegree returns the node's cached in-degree.
func (n *Node) InDegree() int { return n.inDegree }

// OutDegree returns the node's cached out-degree.
func (n *Node) OutDegree() int { return n.outDegree }

// Edge is a host-graph edge: a stable index, a bidirectional flag, an
// owned label and its cached class, and weak (index-only) references
// to its source and target nodes.
type Edge struct {
	index         int
	bidirectional bool

	lbl   label.Label
	class label.Class

	source int
	target int
}

// SetIndex implements slotstore.Indexed.
func (e *Edge) SetIndex(i int) { e.index = i }

// Index returns the edge's stable index.
func (e *Edge) Index() int { return e.index }

// Bidirectional reports whether the edge's bidirectional flag is set.
func (e *Edge) Bidirectional() bool { return e.bidirectional }

// Label returns the edge's owned label.
func (e *Edge) Label() label.Label { return e.lbl }

// Class returns the edge's cached label class.
func (e *Edge) Class() label.Class { return e.class }

// Source returns the edge's source node index.
func (e *Edge) Source() int { return e.source }

// Target returns the edge's target node index.
func (e *Edge) Target() int { return e.target }

// GraphOption configures a Graph's compile-time ceilings before use.
// Options are resolved once in New and are never mutated afterward.
type GraphOption func(g *Graph)

// WithMaxNodes caps the number of live nodes the graph will accept.
// 0 (the default) means unlimited.
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) { g.maxNodes = n }
}

// WithMaxEdges caps the number of live edges the graph will accept.
// 0 (the default) means unlimited.
func WithMaxEdges(n int) GraphOption {
	return func(g *Graph) { g.maxEdges = n }
}

// WithMaxIncidentEdgesPerNode caps the in-degree and out-degree any
// single node may reach. 0 (the default) means unlimited. Incidence
// containers otherwise grow on demand — the ceiling is enforced as an
// explicit AddEdge error, never by silently capping growth.
func WithMaxIncidentEdgesPerNode(n int) GraphOption {
	return func(g *Graph) { g.maxIncidentEdgesPerNode = n }
}

// WithDiagSinks installs the console+log stream pair Validate and
// RemoveNode's dangling-incidence rejection write diagnostics through. Unset, a Graph
// uses diag.Discard(): every diagnostic is silently dropped, so an
// embedder that doesn't care about diagnostics never has to supply
// anything.
func WithDiagSinks(s *diag.Sinks) GraphOption {
	return func(g *Graph) {
		if s != nil {
			g.diag = s
		}
	}
}

// Graph is the host-graph store: a slotted node container, a slotted
// edge container, label-class secondary indices for both, and the
// root-node set.
//
// Graph carries no internal synchronization; see the package doc
// comment.
type Graph struct {
	nodes *slotstore.Container[*Node]
	edges *slotstore.Container[*Edge]

	nodesByClass map[label.Class]*bucket
	edgesByClass map[label.Class]*bucket
	roots        *bucket

	maxNodes                int
	maxEdges                int
	maxIncidentEdgesPerNode int

	diag *diag.Sinks
}

// New returns an empty Graph with the ceilings opts apply.
//
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:        slotstore.New[*Node](),
		edges:        slotstore.New[*Edge](),
		nodesByClass: make(map[label.Class]*bucket),
		edgesByClass: make(map[label.Class]*bucket),
		roots:        newBucket(),
		diag:         diag.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NumberOfNodes returns the count of live nodes.
//
// Complexity: O(1).
func (g *Graph) NumberOfNodes() int { return g.nodes.Count() }

// NumberOfEdges returns the count of live edges.
//
// Complexity: O(1).
func (g *Graph) NumberOfEdges() int { return g.edges.Count() }
