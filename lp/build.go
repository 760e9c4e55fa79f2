package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/flowlp/network"
)

// Build converts a max-flow instance (network, source, sink) into a fully
// populated LP Problem.
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Validate the instance: non-nil network with at least one edge,
//     source and sink present and distinct, every capacity finite and
//     non-negative (O(V + E)).
//  3. Freeze the canonical column ordering (edge insertion order) and
//     emit the objective: −1 per sink-entering edge (O(E)).
//  4. Emit the capacity system: unit row per edge, RHS = capacity (O(E²)
//     dense, diagonal structure).
//  5. Emit the conservation system: for each internal node, +1 on columns
//     of entering edges, −1 on columns of leaving edges, RHS 0 (O(V·E)
//     dense). Source and sink rows are omitted (see package doc); internal
//     nodes with no incident edges would yield an all-zero row and are
//     skipped. Within any weakly-connected component touching neither
//     source nor sink, the balance rows sum to zero, so one node's row per
//     such component is omitted too — redundancy is resolved structurally,
//     never left for the solver to tolerate.
//  6. Emit per-variable bounds [0, +∞) (O(E)).
//
// The resulting Problem is feasible (zero flow) and bounded (total
// sink-entering capacity). On any validation failure no Problem is
// returned.
//
// Complexity: O(E² + V·E) time and memory, dominated by the dense systems.
func Build(net *network.Network, source, sink string, opts Options) (*Problem, error) {
	// 1) Normalize options
	opts.normalize()

	// 2) Validate the instance
	if net == nil {
		return nil, ErrNilNetwork
	}
	edges := net.Edges()
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	if !net.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !net.HasNode(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}
	for _, e := range edges {
		if e.Capacity < 0 || math.IsNaN(e.Capacity) || math.IsInf(e.Capacity, 0) {
			return nil, CapacityError{Label: e.Label, From: e.From, To: e.To, Cap: e.Capacity}
		}
	}

	// 3) Objective: minimize −(total flow into sink)
	nVars := len(edges)
	objective := make([]float64, nVars)
	for j, e := range edges {
		if e.To == sink {
			objective[j] = -1
		}
	}

	// 4) Capacity rows: x_j ≤ capacity_j
	ineq := mat.NewDense(nVars, nVars, nil)
	ineqRHS := make([]float64, nVars)
	for j, e := range edges {
		ineq.Set(j, j, 1)
		ineqRHS[j] = e.Capacity
	}

	// 5) Conservation rows for internal nodes: inflow − outflow = 0.
	// Components holding neither endpoint get one row dropped to keep the
	// equality system full-rank (their node rows sum to zero).
	comp := components(edges)
	srcComp, okSrc := comp[source]
	sinkComp, okSink := comp[sink]
	dropped := make(map[string]bool)
	var balance []float64
	var nBalance int
	for _, id := range net.Nodes() {
		if id == source || id == sink {
			continue
		}
		if c, ok := comp[id]; ok &&
			!(okSrc && c == srcComp) && !(okSink && c == sinkComp) && !dropped[c] {
			dropped[c] = true

			continue
		}
		row := make([]float64, nVars)
		incident := false
		for j, e := range edges {
			// A self-loop contributes +1 and −1 to the same row: net zero.
			if e.To == id {
				row[j]++
				incident = true
			}
			if e.From == id {
				row[j]--
				incident = true
			}
		}
		if !incident {
			continue
		}
		balance = append(balance, row...)
		nBalance++
	}
	var eq *mat.Dense
	var eqRHS []float64
	if nBalance > 0 {
		eq = mat.NewDense(nBalance, nVars, balance)
		eqRHS = make([]float64, nBalance)
	}

	// 6) Bounds: every edge variable in [0, +∞)
	lower := make([]float64, nVars)
	upper := make([]float64, nVars)
	for j := range upper {
		upper[j] = math.Inf(1)
	}

	return &Problem{
		Objective: objective,
		Ineq:      ineq,
		IneqRHS:   ineqRHS,
		Eq:        eq,
		EqRHS:     eqRHS,
		Lower:     lower,
		Upper:     upper,
		columns:   edges,
		epsilon:   opts.Epsilon,
	}, nil
}

// components labels every edge endpoint with its weakly-connected component
// via union-find with path compression. Nodes with no incident edges do not
// appear in the result.
// Complexity: O(E α(V)).
func components(edges []network.Edge) map[string]string {
	parent := make(map[string]string)

	var find func(id string) string
	find = func(id string) string {
		p, ok := parent[id]
		if !ok {
			parent[id] = id

			return id
		}
		if p != id {
			p = find(p)
			parent[id] = p
		}

		return p
	}

	for _, e := range edges {
		ra, rb := find(e.From), find(e.To)
		if ra != rb {
			parent[ra] = rb
		}
	}

	// Flatten so every node maps to its final root.
	roots := make(map[string]string, len(parent))
	for id := range parent {
		roots[id] = find(id)
	}

	return roots
}
