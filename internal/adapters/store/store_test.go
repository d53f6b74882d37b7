package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/store"
	"go.trai.ch/sift/internal/core/domain"
)

func sampleGraph() domain.SerializedGraph {
	return domain.SerializedGraph{
		Nodes: []domain.SerializedNode{
			{
				Node:        domain.NewDepNode("typecheck", "pkg/a"),
				Fingerprint: domain.Fingerprint{1, 2},
				Edges:       []domain.NodeIndex{1, 2},
			},
			{
				Node:        domain.NewDepNode("typecheck", "pkg/b"),
				Fingerprint: domain.Fingerprint{3, 4},
				Edges:       []domain.NodeIndex{2},
			},
			{
				Node:        domain.NewDepNode("compile", "pkg/c"),
				Fingerprint: domain.Fingerprint{5, 6},
			},
		},
		State: []domain.NodeState{domain.StateValid, domain.StateInvalid, domain.StateUnknown},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".sift", "graph.json")
	s := store.NewStore()

	require.NoError(t, s.Save(path, sampleGraph()))

	got, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleGraph(), got)

	// The round-tripped graph must still construct a snapshot.
	pg, err := domain.NewPreviousGraph(got)
	require.NoError(t, err)
	assert.Equal(t, 3, pg.NodeCount())
	assert.Equal(t, 3, pg.EdgeCount())
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	s := store.NewStore()
	_, err := s.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read graph file")
}

func TestStore_LoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json"), 0o600))

	s := store.NewStore()
	_, err := s.Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse graph file")
}

func TestStore_LoadRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported version",
			content: `{"version": 99, "nodes": [], "state": []}`,
			wantErr: domain.ErrUnsupportedGraphVersion.Error(),
		},
		{
			name: "state length mismatch",
			content: `{"version": 1, "nodes": [
				{"kind": "w", "name": "a", "fingerprint": "00000000000000010000000000000002"}
			], "state": []}`,
			wantErr: domain.ErrCorruptGraphData.Error(),
		},
		{
			name: "bad fingerprint",
			content: `{"version": 1, "nodes": [
				{"kind": "w", "name": "a", "fingerprint": "xyz"}
			], "state": [1]}`,
			wantErr: domain.ErrInvalidFingerprint.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "graph.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := store.NewStore().Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestStore_SaveCreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deeply", "nested", "graph.json")
	require.NoError(t, store.NewStore().Save(path, domain.SerializedGraph{}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
