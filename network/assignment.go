package network

// FlowAssignment maps edge labels to the flow carried by each edge.
// It is produced by decoding a solver result; values are non-negative up to
// the decode epsilon. Edges absent from the map carry zero flow.
type FlowAssignment map[string]float64

// Flow returns the flow on the edge with the given label, or 0 when the
// label is absent from the assignment.
func (fa FlowAssignment) Flow(label string) float64 { return fa[label] }

// Inflow sums the flow on all edges entering the given node.
// Returns ErrNodeNotFound if the node does not exist in net.
// Complexity: O(deg_in).
func (fa FlowAssignment) Inflow(net *Network, id string) (float64, error) {
	edges, err := net.InEdges(id)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range edges {
		total += fa[e.Label]
	}

	return total, nil
}

// Outflow sums the flow on all edges leaving the given node.
// Returns ErrNodeNotFound if the node does not exist in net.
// Complexity: O(deg_out).
func (fa FlowAssignment) Outflow(net *Network, id string) (float64, error) {
	edges, err := net.OutEdges(id)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range edges {
		total += fa[e.Label]
	}

	return total, nil
}
