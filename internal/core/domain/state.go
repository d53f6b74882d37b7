package domain

// NodeState is the per-node validity flag carried over from the end of the
// previous session. The snapshot stores and returns it unchanged; deciding
// what to do with it belongs to the caller.
type NodeState uint8

const (
	// StateUnknown indicates the node's validity was not settled when the
	// previous session ended.
	StateUnknown NodeState = iota
	// StateValid indicates the node's result was known to be usable.
	StateValid
	// StateInvalid indicates the node's result was known to be stale.
	StateInvalid
)

// String returns a human-readable name for the state.
func (s NodeState) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
