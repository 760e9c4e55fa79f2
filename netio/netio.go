package netio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowlp/network"
)

// ErrBadRecord indicates a malformed edge-list record.
var ErrBadRecord = errors.New("netio: malformed record")

// fieldsPerRecord is the fixed shape of an edge record: label,from,to,capacity.
const fieldsPerRecord = 4

// ParseEdgeList reads an edge-list from r and builds a network from it.
// Records are `label,from,to,capacity`; '#' starts a comment line; blank
// lines are skipped. Options are forwarded to network.New.
//
// Steps:
//  1. Configure the CSV reader: fixed field count, '#' comments, trimmed
//     leading space (O(1)).
//  2. Per record: trim fields, parse capacity, reject non-finite or
//     negative values via network.AddEdge validation (O(1) each).
//  3. Return the populated network; any failure aborts with the offending
//     record identified, and no network is returned.
//
// Complexity: O(records).
func ParseEdgeList(r io.Reader, opts ...network.Option) (*network.Network, error) {
	// 1) Reader setup
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldsPerRecord
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	net := network.New(opts...)

	// 2) Record loop
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}

		label := strings.TrimSpace(record[0])
		from := strings.TrimSpace(record[1])
		to := strings.TrimSpace(record[2])
		capField := strings.TrimSpace(record[3])

		capacity, err := strconv.ParseFloat(capField, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q: capacity %q is not a number",
				ErrBadRecord, label, capField)
		}

		if err = net.AddEdge(label, from, to, capacity); err != nil {
			return nil, fmt.Errorf("netio: edge %q: %w", label, err)
		}
	}

	// 3) Done
	return net, nil
}

// WriteAssignment writes `label,from,to,flow` records to w, one per edge of
// net in canonical order. Edges absent from flows are written with flow 0.
// Complexity: O(E).
func WriteAssignment(w io.Writer, net *network.Network, flows network.FlowAssignment) error {
	cw := csv.NewWriter(w)
	for _, e := range net.Edges() {
		record := []string{
			e.Label,
			e.From,
			e.To,
			strconv.FormatFloat(flows[e.Label], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("netio: write edge %q: %w", e.Label, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
