// Package gp2core is the runtime host-graph core of a GP2 interpreter:
// an in-memory, directed, labelled, possibly bidirectional multigraph
// with a stable-index storage scheme, a label-class secondary index for
// rule-matching acceleration, and a stackable snapshot/restore facility
// for the speculative execution that `try … then … else` and nested
// control constructs require.
//
// This module covers only the runtime core. The lexical/syntactic
// front-end, the AST and pretty-printer, the symbol table, the semantic
// analyser, the expression virtual machine, and the pattern-matching
// algorithm itself are external collaborators; they consume the core
// through the read-only query surface exposed by package hostgraph.
//
// Everything lives under six subpackages:
//
//	slotstore/  — generic append-with-reuse container (stable indices,
//	              LIFO free-slot stack) underlying every other layer.
//	label/      — Label, Atom, Mark and the label-class classifier.
//	diag/       — the two injectable diagnostic sinks (console + log
//	              stream) user-visible failures are written through.
//	hostgraph/  — Node, Edge, Graph: the mutating API, the label-class
//	              index, the snapshot stack, and the validation predicate.
//	serialize/  — the textual and verbose dump forms consumed by tests
//	              and by the (external) front-end.
//	fixture/    — deterministic and seeded-random graph construction,
//	              used by the property-based and scenario tests.
//
// Single-threaded, synchronous. There is no persistence, no concurrent
// multi-worker access, no distribution, and no GUI — see package
// hostgraph's doc comment for the concurrency model this implies.
package gp2core
