// Package hostgraph is the GP2 host-graph store: a directed, labelled,
// possibly bidirectional multigraph with stable-index storage, a
// label-class secondary index, and a stackable snapshot/restore
// facility for speculative execution.
//
// Concurrency:
//
// Graph carries no internal synchronization. A graph and its snapshot
// stack form one logical resource owned by a single executor;
// concurrent access from multiple goroutines is undefined, unlike the
// thread-safe primitives in more general-purpose graph libraries — GP2
// programs run single-threaded against one host graph at a time, and
// every operation here either commits fully or returns an error before
// touching state.
//
// Ownership:
//
// A Graph exclusively owns its Nodes and Edges. A Node exclusively
// owns its label and its two incidence containers (outgoing and
// incoming edge slots). An Edge exclusively owns its label.
// Cross-references — an edge's source/target, an incidence slot's
// edge, a class-index bucket's membership — are plain int indices,
// never pointers: they carry reachability, not ownership. This is what
// lets Graph.Clone (the deep copy the snapshot stack pushes) reproduce
// an exact deep copy without a pointer-rewiring pass.
package hostgraph
