package flow

import "errors"

// Solver fault classification. Each wraps the underlying solver error.
var (
	// ErrInfeasible is returned when the solver reports an infeasible
	// program. Zero flow is always feasible for a well-formed instance, so
	// this signals a solver-internal fault, not a property of the input.
	ErrInfeasible = errors.New("flow: solver reported infeasible program")

	// ErrUnbounded is returned when the solver reports an unbounded
	// program. Capacities bound every variable, so this likewise signals a
	// solver-internal fault.
	ErrUnbounded = errors.New("flow: solver reported unbounded program")

	// ErrSolverFault is returned on non-convergence or any other internal
	// solver failure.
	ErrSolverFault = errors.New("flow: solver failed")
)

// Feasibility audit failures reported by Verify.
var (
	// ErrCapacityViolated indicates an edge carrying flow below zero or
	// above its capacity beyond tolerance.
	ErrCapacityViolated = errors.New("flow: capacity violated")

	// ErrConservationViolated indicates an internal node whose inflow and
	// outflow differ beyond tolerance.
	ErrConservationViolated = errors.New("flow: conservation violated")
)
