package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateNode is returned when two records claim the same node identity.
	ErrDuplicateNode = zerr.New("duplicate dependency node")

	// ErrCorruptGraphData is returned when a serialized graph violates its own
	// internal consistency, e.g. an edge target outside the node range.
	ErrCorruptGraphData = zerr.New("corrupt dependency graph data")

	// ErrNodeNotFound is returned when a node identity is not present in the graph.
	ErrNodeNotFound = zerr.New("dependency node not found")

	// ErrInvalidFingerprint is returned when a serialized fingerprint cannot be parsed.
	ErrInvalidFingerprint = zerr.New("invalid fingerprint encoding")

	// ErrUnsupportedGraphVersion is returned when a graph file declares a format
	// version this build does not understand.
	ErrUnsupportedGraphVersion = zerr.New("unsupported graph file version")

	// ErrStoreReadFailed is returned when the graph file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read graph file")

	// ErrStoreParseFailed is returned when the graph file cannot be unmarshaled.
	ErrStoreParseFailed = zerr.New("failed to parse graph file")

	// ErrStoreMarshalFailed is returned when the graph cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal graph file")

	// ErrStoreWriteFailed is returned when the graph file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write graph file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no siftfile can be found.
	ErrConfigNotFound = zerr.New("could not find siftfile")
)
