package lp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/flowlp/network"
)

// Problem is the linear-programming encoding of one max-flow instance.
//
// All matrices and vectors share the canonical column ordering: column j
// corresponds to the j-th edge inserted into the source network. A Problem
// is derived once by Build, handed to a solver, and disposable afterwards;
// none of its methods mutate it.
type Problem struct {
	// Objective holds one coefficient per edge variable: −1 for edges
	// entering the sink, 0 otherwise (minimization form).
	Objective []float64

	// Ineq is the capacity system: one row per edge, a unit coefficient on
	// that edge's column. Dimensions: EdgeCount × EdgeCount.
	Ineq *mat.Dense

	// IneqRHS holds the capacity of each edge, aligned with Ineq rows.
	IneqRHS []float64

	// Eq is the conservation system: one row per internal node, +1 on
	// entering-edge columns, −1 on leaving-edge columns. Nil when the
	// network has no internal nodes (e.g. a single source→sink edge).
	Eq *mat.Dense

	// EqRHS is the zero right-hand side of the conservation system,
	// aligned with Eq rows.
	EqRHS []float64

	// Lower and Upper bound each edge variable: [0, +∞).
	Lower, Upper []float64

	columns []network.Edge
	epsilon float64
}

// NumVars returns the number of edge variables (LP columns).
func (p *Problem) NumVars() int { return len(p.columns) }

// NumCapacityRows returns the number of capacity (inequality) rows.
func (p *Problem) NumCapacityRows() int { return len(p.IneqRHS) }

// NumBalanceRows returns the number of conservation (equality) rows.
func (p *Problem) NumBalanceRows() int { return len(p.EqRHS) }

// Columns returns a copy of the canonical column→edge ordering.
func (p *Problem) Columns() []network.Edge {
	out := make([]network.Edge, len(p.columns))
	copy(out, p.columns)

	return out
}

// Column returns the edge behind column j.
// Returns ErrDimensionMismatch when j is outside [0, NumVars).
func (p *Problem) Column(j int) (network.Edge, error) {
	if j < 0 || j >= len(p.columns) {
		return network.Edge{}, fmt.Errorf("lp: column %d out of range [0,%d): %w",
			j, len(p.columns), ErrDimensionMismatch)
	}

	return p.columns[j], nil
}

// Decode maps a raw solution vector, in the canonical column ordering
// established by Build, onto edge labels.
//
// Entries in (−ε, 0) are clipped to zero: basic feasible solutions often
// carry numerical noise at that scale, and the non-negativity invariant
// must hold in presentation. Larger deviations are passed through
// untouched — judging them is the caller's (or Verify's) job, not a decode
// concern.
//
// Returns ErrDimensionMismatch when len(x) ≠ NumVars().
// Complexity: O(E).
func (p *Problem) Decode(x []float64) (network.FlowAssignment, error) {
	// 1) The vector must cover exactly the edge variables
	if len(x) != len(p.columns) {
		return nil, fmt.Errorf("lp: got %d values for %d edges: %w",
			len(x), len(p.columns), ErrDimensionMismatch)
	}

	// 2) Label each value, clipping noise below zero
	flows := make(network.FlowAssignment, len(p.columns))
	for j, e := range p.columns {
		v := x[j]
		if v < 0 && v > -p.epsilon {
			v = 0
		}
		flows[e.Label] = v
	}

	return flows, nil
}
