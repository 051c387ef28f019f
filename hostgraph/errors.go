package hostgraph

import "errors"

// Sentinel errors for Graph operations. Callers branch with errors.Is;
// messages are not part of the contract.
var (
	// ErrDanglingIncidence indicates RemoveNode was called on a node
	// with nonzero in-degree or out-degree.
	ErrDanglingIncidence = errors.New("hostgraph: node has incident edges")

	// ErrNodeNotFound indicates an operation referenced a node index
	// that is out of range or names an empty slot.
	ErrNodeNotFound = errors.New("hostgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge index
	// that is out of range or names an empty slot.
	ErrEdgeNotFound = errors.New("hostgraph: edge not found")

	// ErrMaxNodesExceeded indicates AddNode would exceed the graph's
	// WithMaxNodes ceiling.
	ErrMaxNodesExceeded = errors.New("hostgraph: max nodes exceeded")

	// ErrMaxEdgesExceeded indicates AddEdge would exceed the graph's
	// WithMaxEdges ceiling.
	ErrMaxEdgesExceeded = errors.New("hostgraph: max edges exceeded")

	// ErrMaxIncidentEdgesExceeded indicates AddEdge would exceed the
	// graph's WithMaxIncidentEdgesPerNode ceiling at the source or the
	// target.
	ErrMaxIncidentEdgesExceeded = errors.New("hostgraph: max incident edges per node exceeded")

	// ErrEmptyStack indicates RestoreGraph was called on a SnapshotStack
	// with no pushed snapshot.
	ErrEmptyStack = errors.New("hostgraph: snapshot stack is empty")
)
