// File: api.go
// Role: thin public entry-points, mirroring lvlath/builder/api.go's
// single-orchestrator contract.
//
// Design contract (matches the teacher's):
//   - One orchestrator: Build(gopts, fopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Functional options (Option) resolve into an immutable config; no
//     global state.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
package fixture

import (
	"fmt"

	"github.com/gp2lang/gp2core/hostgraph"
)

// Constructor applies a deterministic graph mutation using the
// resolved config. Constructors MUST validate parameters early and
// return sentinel errors; they must never panic.
type Constructor func(g *hostgraph.Graph, cfg *config) error

// Build creates a new hostgraph.Graph with graph options gopts,
// resolves the fixture configuration from fopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "fixture: Build: %w" and returned immediately; no partial cleanup is
// attempted by design.
//
// Complexity: O(len(fopts)) to resolve config, plus the sum of each
// constructor's own cost.
func Build(gopts []hostgraph.GraphOption, fopts []Option, cons ...Constructor) (*hostgraph.Graph, error) {
	g := hostgraph.New(gopts...)
	cfg := newConfig(fopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("fixture: Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("fixture: Build: %w", err)
		}
	}

	return g, nil
}
