package flow

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	convex "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/flowlp/lp"
	"github.com/katalvlaran/flowlp/network"
)

// MaxFlow computes the maximum flow from `source` to `sink` in the directed
// capacitated network `net` by solving the LP encoding with gonum's simplex.
//
// It returns:
//   - value : the maximum flow value (unique across optimal solutions)
//   - flows : one optimal edge-flow assignment (not unique under degeneracy)
//   - err   : an lp construction error, a solver fault (ErrInfeasible,
//     ErrUnbounded, ErrSolverFault), or a context cancellation error
//
// Steps:
//  1. Normalize options; check ctx (O(1)).
//  2. Build the LP Problem via lp.Build (O(E² + V·E)).
//  3. Assemble the standard form min{cᵀx : Ax = b, x ≥ 0}: capacity rows
//     gain one slack column each, conservation rows carry over as-is
//     (O((E+V)·E)). Edge variables are already bounded below by zero, so
//     no free-variable splitting is required.
//  4. Check ctx, then invoke the simplex once; classify any failure
//     (solve cost is the solver's concern, typically polynomial here).
//  5. Decode the edge-variable prefix of the solution and negate the
//     optimal objective into the flow value, clipping noise at zero (O(E)).
//
// The solve is single-shot: no retries, no alternate algorithms, no
// fallback assignment on failure.
func MaxFlow(
	net *network.Network,
	source, sink string,
	opts Options,
) (value float64, flows network.FlowAssignment, err error) {
	// 1) Normalize options and check for early cancellation
	opts.normalize()
	if err = opts.Ctx.Err(); err != nil {
		return 0, nil, err
	}

	// 2) Build the LP encoding
	lpOpts := lp.DefaultOptions()
	lpOpts.Epsilon = opts.Epsilon
	prob, err := lp.Build(net, source, sink, lpOpts)
	if err != nil {
		return 0, nil, err
	}

	// 3) Assemble standard form
	c, a, b := standardForm(prob)

	// 4) Solve once; the call is opaque to cancellation
	if err = opts.Ctx.Err(); err != nil {
		return 0, nil, err
	}
	opt, x, err := convex.Simplex(c, a, b, opts.Tol, nil)
	if err != nil {
		return 0, nil, classifySolverErr(err)
	}

	// 5) Decode edge variables and negate the objective into the flow value
	flows, err = prob.Decode(x[:prob.NumVars()])
	if err != nil {
		return 0, nil, err
	}
	value = -opt
	if value < 0 && value > -opts.Epsilon {
		value = 0
	}
	if opts.Verbose {
		fmt.Printf("max flow %s→%s: value %g over %d edges (%d capacity rows, %d balance rows)\n",
			source, sink, value, prob.NumVars(), prob.NumCapacityRows(), prob.NumBalanceRows())
	}

	return value, flows, nil
}

// standardForm flattens a Problem into min{cᵀx : Ax = b, x ≥ 0}.
//
// Layout: columns [0, E) are the edge variables in canonical order,
// columns [E, 2E) are slacks, one per capacity row. Capacity rows become
// x_j + s_j = capacity_j; conservation rows carry over unchanged with zero
// slack coefficients.
func standardForm(p *lp.Problem) (c []float64, a *mat.Dense, b []float64) {
	nEdge := p.NumVars()
	mCap := p.NumCapacityRows()
	mBal := p.NumBalanceRows()
	rows, cols := mCap+mBal, nEdge+mCap

	c = make([]float64, cols)
	copy(c, p.Objective)

	a = mat.NewDense(rows, cols, nil)
	b = make([]float64, rows)
	for i := 0; i < mCap; i++ {
		for j := 0; j < nEdge; j++ {
			a.Set(i, j, p.Ineq.At(i, j))
		}
		a.Set(i, nEdge+i, 1)
		b[i] = p.IneqRHS[i]
	}
	for i := 0; i < mBal; i++ {
		for j := 0; j < nEdge; j++ {
			a.Set(mCap+i, j, p.Eq.At(i, j))
		}
		b[mCap+i] = p.EqRHS[i]
	}

	return c, a, b
}

// classifySolverErr maps gonum simplex failures onto this package's
// sentinel errors, preserving the original for errors.Is/As inspection.
func classifySolverErr(err error) error {
	switch {
	case errors.Is(err, convex.ErrInfeasible):
		return fmt.Errorf("%w: %w", ErrInfeasible, err)
	case errors.Is(err, convex.ErrUnbounded):
		return fmt.Errorf("%w: %w", ErrUnbounded, err)
	default:
		return fmt.Errorf("%w: %w", ErrSolverFault, err)
	}
}
