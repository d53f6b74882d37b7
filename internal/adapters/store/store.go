// Package store persists the serialized dependency graph between sessions as
// a versioned JSON file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/zerr"
)

// formatVersion is the graph file format understood by this build. Bump it
// whenever the on-disk layout changes; older files are rejected, not migrated,
// since a stale snapshot is safely equivalent to a cold build.
const formatVersion = 1

// graphFile is the on-disk form of a serialized graph. Record order in Nodes
// defines key assignment and is preserved byte-for-byte across load/save.
type graphFile struct {
	Version int       `json:"version"`
	Nodes   []nodeDTO `json:"nodes"`
	State   []int     `json:"state"`
}

type nodeDTO struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Fingerprint string   `json:"fingerprint"`
	Edges       []uint32 `json:"edges,omitempty"`
}

// Store implements ports.GraphStore using a flat JSON file.
type Store struct{}

// NewStore creates a new graph file store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and decodes the serialized graph at path.
func (s *Store) Load(path string) (domain.SerializedGraph, error) {
	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SerializedGraph{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var file graphFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.SerializedGraph{}, zerr.With(zerr.Wrap(err, domain.ErrStoreParseFailed.Error()), "path", path)
	}

	if file.Version != formatVersion {
		return domain.SerializedGraph{}, zerr.With(zerr.With(domain.ErrUnsupportedGraphVersion,
			"version", file.Version),
			"supported", formatVersion)
	}

	if len(file.State) != len(file.Nodes) {
		return domain.SerializedGraph{}, zerr.With(zerr.With(zerr.With(domain.ErrCorruptGraphData,
			"path", path),
			"node_count", len(file.Nodes)),
			"state_count", len(file.State))
	}

	g := domain.SerializedGraph{
		Nodes: make([]domain.SerializedNode, 0, len(file.Nodes)),
		State: make([]domain.NodeState, 0, len(file.State)),
	}

	for i := range file.Nodes {
		dto := &file.Nodes[i]

		fp, err := domain.ParseFingerprint(dto.Fingerprint)
		if err != nil {
			return domain.SerializedGraph{}, zerr.With(zerr.With(err, "path", path), "node", dto.Kind+"("+dto.Name+")")
		}

		rec := domain.SerializedNode{
			Node:        domain.NewDepNode(dto.Kind, dto.Name),
			Fingerprint: fp,
		}
		if len(dto.Edges) > 0 {
			rec.Edges = make([]domain.NodeIndex, len(dto.Edges))
			for j, target := range dto.Edges {
				rec.Edges[j] = domain.NodeIndex(target)
			}
		}
		g.Nodes = append(g.Nodes, rec)
	}

	for _, st := range file.State {
		g.State = append(g.State, domain.NodeState(st))
	}

	return g, nil
}

// Save encodes and writes the serialized graph to path, creating parent
// directories as needed.
func (s *Store) Save(path string, g domain.SerializedGraph) error {
	path = filepath.Clean(path)

	file := graphFile{
		Version: formatVersion,
		Nodes:   make([]nodeDTO, 0, len(g.Nodes)),
		State:   make([]int, 0, len(g.State)),
	}

	for i := range g.Nodes {
		rec := &g.Nodes[i]
		dto := nodeDTO{
			Kind:        rec.Node.Kind(),
			Name:        rec.Node.Name(),
			Fingerprint: rec.Fingerprint.String(),
		}
		if len(rec.Edges) > 0 {
			dto.Edges = make([]uint32, len(rec.Edges))
			for j, target := range rec.Edges {
				dto.Edges[j] = uint32(target)
			}
		}
		file.Nodes = append(file.Nodes, dto)
	}

	for _, st := range g.State {
		file.State = append(file.State, int(st))
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for graph file"), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}
