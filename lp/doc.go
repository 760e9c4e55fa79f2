// Package lp encodes a maximum-flow instance on a *network.Network as a
// linear program, and decodes raw solver vectors back into labeled flow
// assignments. It owns the FORMULATION only; solving is the flow package's
// (and ultimately the external simplex routine's) concern.
//
// # Encoding
//
// Build(net, source, sink, opts) produces a Problem with:
//
//   - One variable per edge, in the network's canonical (insertion) order.
//     The ordering is frozen inside the Problem and used by Decode.
//   - Objective: entry −1 for every edge whose head is the sink, 0
//     elsewhere. Negation turns "maximize inflow to sink" into the
//     minimize form standard-form solvers expect; the maximum flow value
//     is the NEGATED optimal objective.
//   - Inequality system: one row per edge with a unit coefficient on that
//     edge's column and the edge's capacity on the right-hand side (≤).
//   - Equality system: one balance row per INTERNAL node (neither source
//     nor sink): +1 for each entering edge, −1 for each leaving edge,
//     right-hand side 0. The source and sink rows are omitted — with no
//     synthetic sink→source arc, a zero-balance row at the source would
//     force the trivial zero flow, and the sink row is linearly dependent
//     on the rest. Omission also keeps the equality system full-rank, so
//     the solver never has to tolerate redundant rows. For the same reason
//     one balance row is dropped per weakly-connected component that
//     touches neither source nor sink (the rows of such a component sum
//     to zero).
//   - Bounds: every edge variable lies in [0, +∞).
//
// The resulting program is always feasible (the zero flow satisfies every
// constraint) and bounded above by the total capacity entering the sink.
//
// # Decoding
//
// (*Problem).Decode maps a solution vector, in the frozen column order,
// onto edge labels. Values in (−ε, 0) are clipped to zero — solver noise,
// not an error. Decode never mutates the Problem and may be called any
// number of times.
//
// # Errors
//
//	ErrNilNetwork        - Build received a nil network.
//	ErrNoEdges           - the network has no edges to route flow over.
//	ErrSourceNotFound    - the source node is absent.
//	ErrSinkNotFound      - the sink node is absent.
//	ErrSameSourceSink    - source and sink are the same node.
//	ErrDimensionMismatch - Decode received a vector of the wrong length.
//	CapacityError        - an edge capacity is negative or non-finite.
//
// No partial Problem is ever returned alongside an error.
package lp
