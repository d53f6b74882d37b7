package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// NodeIndex is a dense zero-based handle assigned to every node at snapshot
// construction time. It is stable for the snapshot's lifetime and is the array
// index for every per-node collection. Indices have no meaning outside the
// snapshot instance that issued them.
type NodeIndex uint32

// PreviousGraph is a frozen snapshot of the dependency graph recorded by the
// previous session. Construction happens exactly once, after which the
// structure is read-only; the absence of any mutating method is what makes it
// safe to share across concurrent readers without locking.
//
// Per-node attributes live in parallel slices indexed by NodeIndex. Edges are
// stored in compressed-sparse-row form: one shared flat slice of edge targets
// plus a [start, end) pair per node, so edge storage costs no per-node
// allocation and EdgeTargets is a subslice, not a copy.
type PreviousGraph struct {
	// index maps node identities to their dense index. This is the only
	// identity-keyed collection; it serves the cold-path lookup of resolving
	// an external identity into the snapshot's key space.
	index           map[DepNode]NodeIndex
	nodes           []DepNode
	fingerprints    []Fingerprint
	edgeListIndices [][2]uint32
	// edgeListData holds all edge targets back to back. Edge sources are
	// implicit in edgeListIndices.
	edgeListData []NodeIndex
	state        []NodeState
}

// NewPreviousGraph builds a snapshot from a fully-materialized serialized
// graph. Keys are assigned in record order. Any inconsistency in the input
// (duplicate identity, edge target outside the node range, state length
// mismatch) aborts construction; there is no partial snapshot.
func NewPreviousGraph(g SerializedGraph) (*PreviousGraph, error) {
	nodeCount := len(g.Nodes)

	if len(g.State) != nodeCount {
		return nil, zerr.With(zerr.With(ErrCorruptGraphData,
			"node_count", nodeCount),
			"state_count", len(g.State))
	}

	index := make(map[DepNode]NodeIndex, nodeCount)
	nodes := make([]DepNode, 0, nodeCount)
	fingerprints := make([]Fingerprint, 0, nodeCount)
	edgeListIndices := make([][2]uint32, 0, nodeCount)
	edgeListData := make([]NodeIndex, 0, g.EdgeCount())

	for i := range g.Nodes {
		rec := &g.Nodes[i]

		if _, exists := index[rec.Node]; exists {
			return nil, zerr.With(ErrDuplicateNode, "node", rec.Node.String())
		}
		index[rec.Node] = NodeIndex(i)

		nodes = append(nodes, rec.Node)
		fingerprints = append(fingerprints, rec.Fingerprint)

		start := uint32(len(edgeListData))
		for _, target := range rec.Edges {
			if int(target) >= nodeCount {
				return nil, zerr.With(zerr.With(zerr.With(ErrCorruptGraphData,
					"node", rec.Node.String()),
					"edge_target", uint32(target)),
					"node_count", nodeCount)
			}
			edgeListData = append(edgeListData, target)
		}
		edgeListIndices = append(edgeListIndices, [2]uint32{start, uint32(len(edgeListData))})
	}

	state := make([]NodeState, nodeCount)
	copy(state, g.State)

	return &PreviousGraph{
		index:           index,
		nodes:           nodes,
		fingerprints:    fingerprints,
		edgeListIndices: edgeListIndices,
		edgeListData:    edgeListData,
		state:           state,
	}, nil
}

// NodeCount returns the number of nodes in the snapshot.
func (pg *PreviousGraph) NodeCount() int {
	return len(pg.nodes)
}

// EdgeCount returns the total number of edges in the snapshot.
func (pg *PreviousGraph) EdgeCount() int {
	return len(pg.edgeListData)
}

// NodeAt returns the identity of the node at the given index. The index must
// have been obtained from this snapshot; an out-of-range index panics.
func (pg *PreviousGraph) NodeAt(i NodeIndex) DepNode {
	return pg.nodes[i]
}

// IndexOf resolves a node identity to its dense index. It returns
// ErrNodeNotFound for identities that were not present in the previous
// session.
func (pg *PreviousGraph) IndexOf(node DepNode) (NodeIndex, error) {
	i, ok := pg.index[node]
	if !ok {
		return 0, zerr.With(ErrNodeNotFound, "node", node.String())
	}
	return i, nil
}

// TryIndexOf resolves a node identity to its dense index, reporting
// membership instead of failing. Callers use this to test whether a node is
// new to the current session.
func (pg *PreviousGraph) TryIndexOf(node DepNode) (NodeIndex, bool) {
	i, ok := pg.index[node]
	return i, ok
}

// FingerprintAt returns the fingerprint of the node at the given index.
func (pg *PreviousGraph) FingerprintAt(i NodeIndex) Fingerprint {
	return pg.fingerprints[i]
}

// FingerprintOf returns the fingerprint recorded for the given identity, or
// false if the identity was not present in the previous session.
func (pg *PreviousGraph) FingerprintOf(node DepNode) (Fingerprint, bool) {
	i, ok := pg.index[node]
	if !ok {
		return Fingerprint{}, false
	}
	return pg.fingerprints[i], true
}

// EdgeTargets returns the outgoing edges of the node at the given index, in
// the exact order they were supplied at construction. The returned slice
// aliases the snapshot's shared edge storage and must not be modified.
func (pg *PreviousGraph) EdgeTargets(i NodeIndex) []NodeIndex {
	r := pg.edgeListIndices[i]
	return pg.edgeListData[r[0]:r[1]]
}

// StateAt returns the validity state carried over for the node at the given
// index.
func (pg *PreviousGraph) StateAt(i NodeIndex) NodeState {
	return pg.state[i]
}

// Nodes returns an iterator over all nodes in index order.
func (pg *PreviousGraph) Nodes() iter.Seq2[NodeIndex, DepNode] {
	return func(yield func(NodeIndex, DepNode) bool) {
		for i, node := range pg.nodes {
			if !yield(NodeIndex(i), node) {
				return
			}
		}
	}
}
