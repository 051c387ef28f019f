// File: errors.go
// Role: sentinel errors for the fixture package.
//
// Error policy: only sentinel variables are exposed; callers branch
// with errors.Is. Constructor implementations attach context with
// fmt.Errorf("%w", ...) rather than stringifying parameters into the
// sentinel itself.
package fixture

import "errors"

var (
	// ErrTooFewNodes indicates a topology parameter n is smaller than
	// the constructor's minimum.
	ErrTooFewNodes = errors.New("fixture: parameter too small")

	// ErrConstructFailed indicates a nil Constructor was passed to
	// Build.
	ErrConstructFailed = errors.New("fixture: construction failed")

	// ErrNeedRandSource indicates a stochastic constructor requires a
	// non-nil *rand.Rand in the resolved config (set via WithSeed or
	// WithRand).
	ErrNeedRandSource = errors.New("fixture: rng is required")
)
