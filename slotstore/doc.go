// SPDX-License-Identifier: MIT
//
// Package slotstore provides the generic append-with-reuse container
// that every other layer of gp2core is built on: it hands out stable
// integer indices on insert and recycles freed indices via a LIFO
// free-slot stack, so that indices into a Container never change for
// the lifetime of the element they name.
//
// Determinism:
//   - All yields a snapshot-free, ascending-index traversal of the
//     occupied slots, restartable at any time.
//
// Concurrency:
//   - Container is not safe for concurrent use. The core that embeds
//     it (package hostgraph) is itself single-threaded by design; see
//     hostgraph's doc comment.
package slotstore
