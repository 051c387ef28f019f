// Package fixture builds deterministic and seeded-random hostgraph.Graph
// values for tests: a handful of fixed topologies (Path, Star, Cycle)
// plus RandomOpSequence, a seeded generator of mutation sequences used
// by the §8 property-based tests.
//
// Adapted from lvlath/builder: Constructor/Build mirror
// lvlath/builder's Constructor/BuildGraph exactly, retargeted from
// core.Graph vertex IDs to hostgraph.Graph node indices.
package fixture
