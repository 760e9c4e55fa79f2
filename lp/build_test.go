package lp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowlp/lp"
	"github.com/katalvlaran/flowlp/network"
)

// BuildSuite exercises the LP encoding and decoding.
type BuildSuite struct {
	suite.Suite
}

// diamond builds the two-path network used across the suite:
//
//	s ──sa(3)──▶ a ──at(2)──▶ t
//	s ──sb(2)──▶ b ──bt(3)──▶ t
//
// Canonical column order: sa, sb, at, bt.
func (s *BuildSuite) diamond() *network.Network {
	net := network.New()
	require.NoError(s.T(), net.AddEdge("sa", "s", "a", 3))
	require.NoError(s.T(), net.AddEdge("sb", "s", "b", 2))
	require.NoError(s.T(), net.AddEdge("at", "a", "t", 2))
	require.NoError(s.T(), net.AddEdge("bt", "b", "t", 3))

	return net
}

// TestObjective verifies −1 entries exactly on sink-entering columns.
func (s *BuildSuite) TestObjective() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), []float64{0, 0, -1, -1}, prob.Objective)
}

// TestCapacityRows verifies the identity structure and RHS of the
// inequality system.
func (s *BuildSuite) TestCapacityRows() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 4, prob.NumCapacityRows())
	require.Equal(s.T(), []float64{3, 2, 2, 3}, prob.IneqRHS)

	rows, cols := prob.Ineq.Dims()
	require.Equal(s.T(), 4, rows)
	require.Equal(s.T(), 4, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(s.T(), want, prob.Ineq.At(i, j))
		}
	}
}

// TestBalanceRows verifies one incidence row per internal node, in sorted
// node order, with +1 on entering and −1 on leaving columns.
func (s *BuildSuite) TestBalanceRows() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 2, prob.NumBalanceRows())
	require.Equal(s.T(), []float64{0, 0}, prob.EqRHS)

	// Internal nodes sorted: a, b. Columns: sa, sb, at, bt.
	require.Equal(s.T(), []float64{1, 0, -1, 0}, prob.Eq.RawRowView(0))
	require.Equal(s.T(), []float64{0, 1, 0, -1}, prob.Eq.RawRowView(1))
}

// TestBalanceSkipsSourceAndSink verifies neither endpoint contributes a row:
// a zero-balance source row would force the trivial zero flow.
func (s *BuildSuite) TestBalanceSkipsSourceAndSink() {
	// Single edge: no internal nodes at all.
	net := network.New()
	require.NoError(s.T(), net.AddEdge("st", "s", "t", 5))

	prob, err := lp.Build(net, "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, prob.NumBalanceRows())
	require.Nil(s.T(), prob.Eq)
}

// TestBalanceSkipsIsolatedNodes verifies explicitly added nodes with no
// incident edges contribute no (all-zero) row.
func (s *BuildSuite) TestBalanceSkipsIsolatedNodes() {
	net := s.diamond()
	require.NoError(s.T(), net.AddNode("island"))

	prob, err := lp.Build(net, "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, prob.NumBalanceRows())
}

// TestBalanceDropsOneRowPerDetachedComponent verifies a component holding
// neither source nor sink loses exactly one balance row: its node rows sum
// to zero, and a full set would make the equality system singular.
func (s *BuildSuite) TestBalanceDropsOneRowPerDetachedComponent() {
	net := s.diamond()
	require.NoError(s.T(), net.AddEdge("xy", "x", "y", 1))
	require.NoError(s.T(), net.AddEdge("yx", "y", "x", 1))

	prob, err := lp.Build(net, "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	// a, b from the main component; one of {x, y} dropped.
	require.Equal(s.T(), 3, prob.NumBalanceRows())
}

// TestBounds verifies every edge variable is bounded in [0, +∞).
func (s *BuildSuite) TestBounds() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), []float64{0, 0, 0, 0}, prob.Lower)
	require.Len(s.T(), prob.Upper, 4)
	for _, u := range prob.Upper {
		require.True(s.T(), math.IsInf(u, 1))
	}
}

// TestColumns verifies the frozen canonical ordering and its accessors.
func (s *BuildSuite) TestColumns() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 4, prob.NumVars())

	cols := prob.Columns()
	require.Equal(s.T(), "sa", cols[0].Label)
	require.Equal(s.T(), "bt", cols[3].Label)

	e, err := prob.Column(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "at", e.Label)

	_, err = prob.Column(4)
	require.True(s.T(), errors.Is(err, lp.ErrDimensionMismatch))
	_, err = prob.Column(-1)
	require.True(s.T(), errors.Is(err, lp.ErrDimensionMismatch))
}

// TestBuildErrors covers every construction failure.
func (s *BuildSuite) TestBuildErrors() {
	opts := lp.DefaultOptions()

	_, err := lp.Build(nil, "s", "t", opts)
	require.True(s.T(), errors.Is(err, lp.ErrNilNetwork))

	empty := network.New()
	require.NoError(s.T(), empty.AddNode("s"))
	_, err = lp.Build(empty, "s", "t", opts)
	require.True(s.T(), errors.Is(err, lp.ErrNoEdges))

	net := s.diamond()
	_, err = lp.Build(net, "missing", "t", opts)
	require.True(s.T(), errors.Is(err, lp.ErrSourceNotFound))

	_, err = lp.Build(net, "s", "missing", opts)
	require.True(s.T(), errors.Is(err, lp.ErrSinkNotFound))

	_, err = lp.Build(net, "s", "s", opts)
	require.True(s.T(), errors.Is(err, lp.ErrSameSourceSink))
}

// TestDecode covers labeling, clipping, and dimension checks.
func (s *BuildSuite) TestDecode() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	flows, err := prob.Decode([]float64{2, 2, -1e-12, 2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, flows["sa"])
	require.Equal(s.T(), 0.0, flows["at"], "noise in (−ε,0) must clip to zero")
	require.Equal(s.T(), 2.0, flows["bt"])

	_, err = prob.Decode([]float64{1, 2, 3})
	require.True(s.T(), errors.Is(err, lp.ErrDimensionMismatch))
}

// TestDecodePassesLargeDeviations verifies decode is cosmetic only: values
// beyond the noise band are passed through untouched.
func (s *BuildSuite) TestDecodePassesLargeDeviations() {
	prob, err := lp.Build(s.diamond(), "s", "t", lp.DefaultOptions())
	require.NoError(s.T(), err)

	flows, err := prob.Decode([]float64{-0.5, 0, 0, 0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), -0.5, flows["sa"])
}

// Entry point for running the suite.
func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}
