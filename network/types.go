package network

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyNodeID indicates that a node ID was the empty string.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrEmptyEdgeLabel indicates that an edge label was the empty string.
	ErrEmptyEdgeLabel = errors.New("network: edge label is empty")

	// ErrDuplicateLabel indicates that an edge label was already in use.
	ErrDuplicateLabel = errors.New("network: duplicate edge label")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge label.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrBadCapacity indicates a negative, NaN, or infinite capacity.
	ErrBadCapacity = errors.New("network: capacity must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was added when loops are disabled.
	ErrLoopNotAllowed = errors.New("network: self-loop not allowed")
)

// Edge is a directed connection between two nodes.
//
// Label uniquely identifies the edge within its Network; parallel edges
// between the same node pair are distinct entities with distinct labels.
type Edge struct {
	// Label is the unique identifier for this edge.
	Label string

	// From is the tail node ID (flow leaves this node).
	From string

	// To is the head node ID (flow enters this node).
	To string

	// Capacity is the upper bound on the flow this edge may carry.
	// Always finite and non-negative.
	Capacity float64
}

// Option configures behavior of a Network before construction.
type Option func(*Network)

// WithLoops permits self-loops (edges from a node to itself).
// A loop contributes nothing to any node balance and is bounded by its
// capacity like any other edge.
func WithLoops() Option {
	return func(n *Network) { n.allowLoops = true }
}

// Network is an in-memory directed capacitated multigraph.
//
// nodes holds the node set; edges holds all edges in insertion order,
// which is the canonical ordering consumed by lp.Build. byLabel, outByNode
// and inByNode are lookup indexes into edges.
type Network struct {
	allowLoops bool

	nodes     map[string]struct{}
	edges     []Edge
	byLabel   map[string]int
	outByNode map[string][]int
	inByNode  map[string][]int
}

// New creates an empty Network with the given options.
// By default self-loops are rejected; parallel edges are always allowed.
// Complexity: O(1).
func New(opts ...Option) *Network {
	n := &Network{
		nodes:     make(map[string]struct{}),
		byLabel:   make(map[string]int),
		outByNode: make(map[string][]int),
		inByNode:  make(map[string][]int),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
