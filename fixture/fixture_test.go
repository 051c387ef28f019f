// Package fixture_test exercises the fixture constructors against the
// hostgraph public API.
package fixture_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gp2lang/gp2core/fixture"
	"github.com/gp2lang/gp2core/hostgraph"
)

func TestPathBuildsChainWithRootAtZero(t *testing.T) {
	g, err := fixture.Build(nil, nil, fixture.Path(5))
	require.NoError(t, err)

	require.Equal(t, 5, g.NumberOfNodes())
	require.Equal(t, 4, g.NumberOfEdges())
	require.Len(t, g.RootNodes(), 1)
	require.True(t, g.Valid(), "violations: %v", g.Validate())
}

func TestPathRejectsTooFewNodes(t *testing.T) {
	_, err := fixture.Build(nil, nil, fixture.Path(1))
	require.ErrorIs(t, err, fixture.ErrTooFewNodes)
}

func TestStarBuildsHubAndLeaves(t *testing.T) {
	g, err := fixture.Build(nil, nil, fixture.Star(6))
	require.NoError(t, err)

	require.Equal(t, 6, g.NumberOfNodes())
	require.Equal(t, 5, g.NumberOfEdges())
	require.True(t, g.Valid(), "violations: %v", g.Validate())
}

func TestCycleClosesTheLoop(t *testing.T) {
	g, err := fixture.Build(nil, nil, fixture.Cycle(4))
	require.NoError(t, err)

	require.Equal(t, 4, g.NumberOfNodes())
	require.Equal(t, 4, g.NumberOfEdges())
	require.True(t, g.Valid(), "violations: %v", g.Validate())
}

func TestCycleRejectsTooFewNodes(t *testing.T) {
	_, err := fixture.Build(nil, nil, fixture.Cycle(2))
	require.ErrorIs(t, err, fixture.ErrTooFewNodes)
}

func TestRandomOpSequenceRequiresRNG(t *testing.T) {
	_, err := fixture.Build(nil, nil, fixture.RandomOpSequence(10))
	require.ErrorIs(t, err, fixture.ErrNeedRandSource)
}

func TestRandomOpSequenceIsDeterministicForFixedSeed(t *testing.T) {
	run := func() *hostgraph.Graph {
		g, err := fixture.Build(nil, []fixture.Option{fixture.WithSeed(42)}, fixture.RandomOpSequence(200))
		require.NoError(t, err)
		return g
	}

	a, b := run(), run()
	require.Equal(t, a.NumberOfNodes(), b.NumberOfNodes())
	require.Equal(t, a.NumberOfEdges(), b.NumberOfEdges())
	require.True(t, a.Valid(), "violations: %v", a.Validate())
}

func TestRandomOpSequenceWithExplicitRand(t *testing.T) {
	g, err := fixture.Build(nil, []fixture.Option{fixture.WithRand(rand.New(rand.NewSource(7)))}, fixture.RandomOpSequence(100))
	require.NoError(t, err)
	require.True(t, g.Valid(), "violations: %v", g.Validate())
}

func TestBuildRejectsNilConstructor(t *testing.T) {
	_, err := fixture.Build(nil, nil, nil)
	require.ErrorIs(t, err, fixture.ErrConstructFailed)
}

func TestBuildAppliesConstructorsInOrder(t *testing.T) {
	g, err := fixture.Build(nil, nil, fixture.Path(3), fixture.Star(4))
	require.NoError(t, err)
	require.Equal(t, 7, g.NumberOfNodes())
	require.True(t, g.Valid(), "violations: %v", g.Validate())
}
