// Package app implements the application layer for sift.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/graph"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store        ports.GraphStore
	configLoader ports.ConfigLoader
	logger       ports.Logger
}

// New creates a new App instance.
func New(store ports.GraphStore, loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		store:        store,
		configLoader: loader,
		logger:       log,
	}
}

// Stats summarizes a loaded snapshot.
type Stats struct {
	Nodes  int
	Edges  int
	States map[string]int
}

// Stats loads the snapshot and reports node, edge and per-state counts.
// An empty path means "use the siftfile's graph path".
func (a *App) Stats(path string) (Stats, error) {
	pg, _, err := a.loadSnapshot(path)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Nodes:  pg.NodeCount(),
		Edges:  pg.EdgeCount(),
		States: make(map[string]int),
	}
	for key := range pg.Nodes() {
		stats.States[pg.StateAt(key).String()]++
	}
	return stats, nil
}

// Trace resolves a node identity in the snapshot and returns its direct
// dependencies in stored order, rendered as "kind(name) state fingerprint".
func (a *App) Trace(path, kind, name string) ([]string, error) {
	pg, _, err := a.loadSnapshot(path)
	if err != nil {
		return nil, err
	}

	key, err := pg.IndexOf(domain.NewDepNode(kind, name))
	if err != nil {
		return nil, err
	}

	targets := pg.EdgeTargets(key)
	lines := make([]string, 0, len(targets))
	for _, target := range targets {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			pg.NodeAt(target),
			pg.StateAt(target),
			pg.FingerprintAt(target),
		))
	}
	return lines, nil
}

// Verify loads the snapshot and audits its structural invariants.
func (a *App) Verify(ctx context.Context, path string) error {
	pg, workers, err := a.loadSnapshot(path)
	if err != nil {
		return err
	}

	if err := graph.Verify(ctx, pg, workers); err != nil {
		return zerr.Wrap(err, "snapshot verification failed")
	}

	a.logger.Info(fmt.Sprintf("snapshot ok: %d nodes, %d edges", pg.NodeCount(), pg.EdgeCount()))
	return nil
}

// loadSnapshot resolves the graph path, loads the serialized graph and
// constructs the frozen snapshot. It returns the verification parallelism
// alongside, which is only configured through the siftfile.
func (a *App) loadSnapshot(path string) (*domain.PreviousGraph, int, error) {
	var workers int
	if path == "" {
		cfg, err := a.configLoader.Load(".")
		if err != nil {
			return nil, 0, zerr.Wrap(err, "failed to load configuration")
		}
		path = cfg.GraphPath
		workers = cfg.Workers
	}

	serialized, err := a.store.Load(path)
	if err != nil {
		return nil, 0, err
	}

	pg, err := domain.NewPreviousGraph(serialized)
	if err != nil {
		return nil, 0, zerr.With(err, "path", path)
	}
	return pg, workers, nil
}
