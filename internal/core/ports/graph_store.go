package ports

import "go.trai.ch/sift/internal/core/domain"

// GraphStore defines the interface for loading and persisting the serialized
// dependency graph between sessions.
//
//go:generate mockgen -source=graph_store.go -destination=mocks/mock_graph_store.go -package=mocks
type GraphStore interface {
	// Load reads the serialized graph from the given path. Record order in the
	// file defines key assignment and is preserved.
	Load(path string) (domain.SerializedGraph, error)

	// Save writes the serialized graph to the given path, creating parent
	// directories as needed.
	Save(path string, g domain.SerializedGraph) error
}
