package domain

// SerializedNode is one record of the raw graph produced by the loader: a node
// identity, the fingerprint of its last-computed result, and its outgoing
// edges already resolved to positions in the same record list.
type SerializedNode struct {
	Node        DepNode
	Fingerprint Fingerprint
	Edges       []NodeIndex
}

// SerializedGraph is the fully-materialized input consumed by
// NewPreviousGraph. Record order defines key assignment and must be
// deterministic run-to-run for reproducible builds. State is addressed by
// record position and must have one entry per node.
type SerializedGraph struct {
	Nodes []SerializedNode
	State []NodeState
}

// EdgeCount returns the total number of edges across all records.
func (g SerializedGraph) EdgeCount() int {
	var total int
	for i := range g.Nodes {
		total += len(g.Nodes[i].Edges)
	}
	return total
}
