package network

import (
	"fmt"
	"math"
	"sort"
)

// AddNode inserts a node with the given ID, if not already present.
// Adding an existing node is a no-op.
// Returns ErrEmptyNodeID for an empty ID.
// Complexity: O(1).
func (n *Network) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n.nodes[id] = struct{}{}

	return nil
}

// AddEdge inserts a directed edge from→to with the given unique label and
// capacity, creating both endpoint nodes if needed.
//
// Validation:
//   - label must be non-empty and unused (ErrEmptyEdgeLabel, ErrDuplicateLabel)
//   - from/to must be non-empty (ErrEmptyNodeID)
//   - capacity must be finite and ≥ 0 (ErrBadCapacity)
//   - from == to requires WithLoops (ErrLoopNotAllowed)
//
// On error the network is left unchanged. The edge's position in the
// canonical ordering is its insertion rank.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(label, from, to string, capacity float64) error {
	// 1) Validate identifiers
	if label == "" {
		return ErrEmptyEdgeLabel
	}
	if _, dup := n.byLabel[label]; dup {
		return fmt.Errorf("network: edge %q: %w", label, ErrDuplicateLabel)
	}
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to && !n.allowLoops {
		return fmt.Errorf("network: edge %q: %w", label, ErrLoopNotAllowed)
	}

	// 2) Validate capacity: finite, non-negative
	if capacity < 0 || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return fmt.Errorf("network: edge %q (%s→%s) capacity %g: %w",
			label, from, to, capacity, ErrBadCapacity)
	}

	// 3) Materialize endpoints and append the edge
	n.nodes[from] = struct{}{}
	n.nodes[to] = struct{}{}
	idx := len(n.edges)
	n.edges = append(n.edges, Edge{Label: label, From: from, To: to, Capacity: capacity})
	n.byLabel[label] = idx
	n.outByNode[from] = append(n.outByNode[from], idx)
	n.inByNode[to] = append(n.inByNode[to], idx)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]

	return ok
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (n *Network) EdgeCount() int { return len(n.edges) }

// Nodes returns all node IDs sorted lexicographically.
// Complexity: O(V log V).
func (n *Network) Nodes() []string {
	ids := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a copy of all edges in insertion order — the canonical
// variable ordering used for LP column assignment.
// Complexity: O(E).
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// EdgeByLabel returns the edge with the given label.
// Returns ErrEdgeNotFound if the label is unknown.
// Complexity: O(1).
func (n *Network) EdgeByLabel(label string) (Edge, error) {
	idx, ok := n.byLabel[label]
	if !ok {
		return Edge{}, fmt.Errorf("network: edge %q: %w", label, ErrEdgeNotFound)
	}

	return n.edges[idx], nil
}

// OutEdges returns the edges leaving the given node, in insertion order.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg_out).
func (n *Network) OutEdges(id string) ([]Edge, error) {
	if !n.HasNode(id) {
		return nil, fmt.Errorf("network: node %q: %w", id, ErrNodeNotFound)
	}
	out := make([]Edge, 0, len(n.outByNode[id]))
	for _, idx := range n.outByNode[id] {
		out = append(out, n.edges[idx])
	}

	return out, nil
}

// InEdges returns the edges entering the given node, in insertion order.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg_in).
func (n *Network) InEdges(id string) ([]Edge, error) {
	if !n.HasNode(id) {
		return nil, fmt.Errorf("network: node %q: %w", id, ErrNodeNotFound)
	}
	in := make([]Edge, 0, len(n.inByNode[id]))
	for _, idx := range n.inByNode[id] {
		in = append(in, n.edges[idx])
	}

	return in, nil
}
