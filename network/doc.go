// Package network defines the directed capacitated multigraph consumed by
// the lp and flow packages: Network, Edge, and FlowAssignment.
//
// # Model
//
//   - Every edge is directed, carries a unique string label and a finite
//     non-negative float64 capacity.
//   - Parallel edges between the same node pair are always permitted; each
//     is a distinct entity with its own label and capacity.
//   - Self-loops are rejected unless the network was built WithLoops.
//   - Nodes are created implicitly by AddEdge, or explicitly by AddNode
//     (useful for isolated nodes, which are legal and carry zero flow).
//
// # Ordering guarantees
//
// Edges() returns edges in insertion order. This ordering is the canonical
// variable ordering used by lp.Build to assign LP column indices, so two
// networks built by the same sequence of AddEdge calls encode to identical
// linear programs. Nodes() returns node IDs sorted lexicographically.
//
// # Lifecycle
//
// A Network is built once by the caller and then treated as immutable input
// by the rest of the module; accessors return copies, never internal state.
// There is no internal locking: the construct-once, solve-once model needs
// none.
//
// # Errors
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrEmptyEdgeLabel - edge label is the empty string.
//	ErrDuplicateLabel - edge label already used in this network.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge label does not exist.
//	ErrBadCapacity    - capacity is negative, NaN, or infinite.
//	ErrLoopNotAllowed - self-loop added without WithLoops.
package network
