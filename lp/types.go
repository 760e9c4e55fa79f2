package lp

import (
	"errors"
	"fmt"
)

// Sentinel errors for LP construction and decoding.
var (
	// ErrNilNetwork indicates Build received a nil network.
	ErrNilNetwork = errors.New("lp: nil network")

	// ErrNoEdges indicates the network has no edges.
	ErrNoEdges = errors.New("lp: network has no edges")

	// ErrSourceNotFound indicates the source node is absent from the network.
	ErrSourceNotFound = errors.New("lp: source node not found")

	// ErrSinkNotFound indicates the sink node is absent from the network.
	ErrSinkNotFound = errors.New("lp: sink node not found")

	// ErrSameSourceSink indicates source and sink name the same node.
	ErrSameSourceSink = errors.New("lp: source and sink must be distinct")

	// ErrDimensionMismatch indicates a solution vector whose length does not
	// equal the number of edge variables.
	ErrDimensionMismatch = errors.New("lp: solution length does not match edge count")
)

// CapacityError reports an edge whose capacity is negative or non-finite.
type CapacityError struct {
	Label    string
	From, To string
	Cap      float64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("lp: bad capacity on edge %q (%s→%s): %g", e.Label, e.From, e.To, e.Cap)
}
