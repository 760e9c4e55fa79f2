// Package flow computes maximum flows on *network.Network instances by
// linear programming: it delegates the formulation to the lp package and
// the solve to gonum's simplex implementation
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// # Entry point
//
//	func MaxFlow(
//	    net *network.Network,
//	    source, sink string,
//	    opts Options,
//	) (value float64, flows network.FlowAssignment, err error)
//
// One call performs the whole pipeline: build the LP, assemble standard
// form (one slack column per capacity row; edge variables are already
// non-negative, so no variable splitting is needed), run the simplex,
// decode the solution onto edge labels, and negate the optimal objective
// into the maximum flow value.
//
// The per-edge assignment is ONE optimal witness, not THE optimum: max-flow
// LPs are routinely degenerate, and the vertex the simplex lands on depends
// on its pivoting rule. The value is unique; the assignment is not. Test
// against value and feasibility (see Verify), not exact per-edge numbers.
//
// # Options
//
//	type Options struct {
//	    Ctx     context.Context // cancellation between pipeline stages
//	    Epsilon float64         // noise threshold for decode and Verify (default 1e-9)
//	    Tol     float64         // simplex tolerance; 0 = solver default
//	    Verbose bool            // print a one-line solve summary
//	}
//
// Use DefaultOptions() for production-safe defaults. The solver call itself
// is opaque and cannot be interrupted; Ctx is consulted before each stage.
//
// # Errors
//
// Instance errors (missing source/sink, identical endpoints, empty edge
// set, bad capacity) surface unchanged from lp.Build. Solver faults map to:
//
//	ErrInfeasible  - solver reported an infeasible program. Not expected
//	                 for this class (zero flow is always feasible); treated
//	                 as a solver-internal fault to report, never retried.
//	ErrUnbounded   - solver reported an unbounded program. Likewise not
//	                 expected: capacities bound every variable.
//	ErrSolverFault - non-convergence or any other internal solver failure.
//
// All three wrap the solver's own error for inspection with errors.Is/As.
// No fallback flow assignment is ever invented on failure.
package flow
