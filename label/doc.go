// Package label defines the GP2 label value — a mark plus an ordered
// list of atoms — and the coarse classifier that derives a label's
// index key (package hostgraph's secondary class index).
//
// A Label is immutable once constructed: Graph.RelabelNode and
// Graph.RelabelEdge (package hostgraph) replace the whole value rather than mutating it
// in place, matching the "free the old label, adopt the new one"
// discipline of the reference design.
package label
