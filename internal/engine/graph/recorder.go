// Package graph implements the current-session dependency graph recorder and
// snapshot verification.
package graph

import (
	"sync"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/zerr"
)

// Recorder accumulates the dependency graph of the running session. Many
// workers may report completed nodes concurrently; a mutex guards the builder
// state. Once the session ends, Serialize emits the records in recording
// order so the next session's key assignment is deterministic.
//
// The recorder consults the previous snapshot only for membership queries; it
// never decides whether a previous result is reusable.
type Recorder struct {
	prev *domain.PreviousGraph

	mu    sync.Mutex
	index map[domain.DepNode]domain.NodeIndex
	nodes []recordedNode
	state []domain.NodeState
}

type recordedNode struct {
	node        domain.DepNode
	fingerprint domain.Fingerprint
	edges       []domain.NodeIndex
}

// NewRecorder creates a Recorder for a session that follows the given
// previous snapshot. prev may be nil on a cold build.
func NewRecorder(prev *domain.PreviousGraph) *Recorder {
	return &Recorder{
		prev:  prev,
		index: make(map[domain.DepNode]domain.NodeIndex),
	}
}

// Record adds a completed node with its result fingerprint and the nodes it
// depended on. Dependencies must have been recorded first; recording the same
// node twice is an error.
func (r *Recorder) Record(node domain.DepNode, fp domain.Fingerprint, deps []domain.DepNode) (domain.NodeIndex, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[node]; exists {
		return 0, zerr.With(domain.ErrDuplicateNode, "node", node.String())
	}

	edges := make([]domain.NodeIndex, 0, len(deps))
	for _, dep := range deps {
		target, ok := r.index[dep]
		if !ok {
			return 0, zerr.With(zerr.With(domain.ErrNodeNotFound,
				"node", node.String()),
				"dependency", dep.String())
		}
		edges = append(edges, target)
	}

	key := domain.NodeIndex(len(r.nodes)) //nolint:gosec // bounded by graph size
	r.index[node] = key
	r.nodes = append(r.nodes, recordedNode{node: node, fingerprint: fp, edges: edges})
	r.state = append(r.state, domain.StateUnknown)
	return key, nil
}

// SetState updates the validity flag that will be persisted for a recorded
// node.
func (r *Recorder) SetState(node domain.DepNode, state domain.NodeState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.index[node]
	if !ok {
		return zerr.With(domain.ErrNodeNotFound, "node", node.String())
	}
	r.state[key] = state
	return nil
}

// IsCarriedOver reports whether the node was present in the previous session.
func (r *Recorder) IsCarriedOver(node domain.DepNode) bool {
	if r.prev == nil {
		return false
	}
	_, ok := r.prev.TryIndexOf(node)
	return ok
}

// Len returns the number of recorded nodes.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}

// Serialize emits the recorded graph in recording order. The result is
// suitable both for persisting and for constructing the next session's
// PreviousGraph.
func (r *Recorder) Serialize() domain.SerializedGraph {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := domain.SerializedGraph{
		Nodes: make([]domain.SerializedNode, 0, len(r.nodes)),
		State: make([]domain.NodeState, len(r.state)),
	}
	for i := range r.nodes {
		rec := &r.nodes[i]
		edges := make([]domain.NodeIndex, len(rec.edges))
		copy(edges, rec.edges)
		g.Nodes = append(g.Nodes, domain.SerializedNode{
			Node:        rec.node,
			Fingerprint: rec.fingerprint,
			Edges:       edges,
		})
	}
	copy(g.State, r.state)
	return g
}
