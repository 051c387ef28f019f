// Package serialize renders a hostgraph.Graph into the textual forms
// defined by spec §6: the compact form consumed by tests and the
// (external) front-end, and a verbose human-readable dump. Both
// consume only hostgraph's public read-only query surface.
package serialize
