package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flowlp/network"
)

// Verify audits a flow assignment against the two feasibility invariants:
//
//   - capacity: for every edge, flow lies in [0, capacity] within eps;
//   - conservation: for every node other than source and sink, inflow
//     equals outflow within eps.
//
// Edges absent from the assignment are treated as carrying zero flow.
// An eps ≤ 0 falls back to DefaultEpsilon.
//
// Returns nil on a feasible assignment, otherwise the first violation
// found, wrapping ErrCapacityViolated or ErrConservationViolated.
// Complexity: O(V + E).
func Verify(
	net *network.Network,
	source, sink string,
	flows network.FlowAssignment,
	eps float64,
) error {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	// Capacity bounds per edge
	for _, e := range net.Edges() {
		f := flows[e.Label]
		if f < -eps || f > e.Capacity+eps {
			return fmt.Errorf("flow: edge %q carries %g outside [0,%g]: %w",
				e.Label, f, e.Capacity, ErrCapacityViolated)
		}
	}

	// Conservation at internal nodes
	for _, id := range net.Nodes() {
		if id == source || id == sink {
			continue
		}
		in, err := flows.Inflow(net, id)
		if err != nil {
			return err
		}
		out, err := flows.Outflow(net, id)
		if err != nil {
			return err
		}
		if math.Abs(in-out) > eps {
			return fmt.Errorf("flow: node %q inflow %g ≠ outflow %g: %w",
				id, in, out, ErrConservationViolated)
		}
	}

	return nil
}
