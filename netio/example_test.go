package netio_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/flowlp/flow"
	"github.com/katalvlaran/flowlp/netio"
)

// Example parses an edge list, solves it, and writes the assignment.
// Both paths are tight (min capacity 2 each), so the optimal assignment is
// unique and the output deterministic.
func Example() {
	input := `# two-path network
sa, s, a, 3
at, a, t, 2
sb, s, b, 2
bt, b, t, 3
`
	net, _ := netio.ParseEdgeList(strings.NewReader(input))
	_, flows, _ := flow.MaxFlow(net, "s", "t", flow.DefaultOptions())
	_ = netio.WriteAssignment(os.Stdout, net, flows)
	// Output:
	// sa,s,a,2
	// at,a,t,2
	// sb,s,b,2
	// bt,b,t,2
}
