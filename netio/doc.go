// Package netio reads and writes the line-oriented edge-list format for
// flow networks.
//
// # Input format
//
// One edge per record, four comma-separated fields:
//
//	label,from,to,capacity
//
// Blank lines and lines starting with '#' are skipped. Field whitespace is
// trimmed. Capacity must parse as a finite non-negative float. Example:
//
//	# a two-path network
//	sa, s, a, 3
//	at, a, t, 2
//	sb, s, b, 2
//	bt, b, t, 3
//
// Source and sink designation is NOT part of the format: they are solve
// parameters, not network properties, and are passed to flow.MaxFlow
// directly.
//
// # Output format
//
// WriteAssignment emits one record per edge in the network's canonical
// order:
//
//	label,from,to,flow
//
// # Errors
//
// ErrBadRecord wraps every malformed-input failure, annotated with the
// offending record; network construction failures (duplicate labels, bad
// capacities, ...) surface from the network package unchanged.
package netio
