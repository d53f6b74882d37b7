// Package config provides the session configuration loader for sift.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the siftfile starting at cwd and walking up, reads it, and
// resolves defaults. The graph path is resolved relative to the siftfile's
// directory so the session behaves the same from any subdirectory.
func (l *Loader) Load(cwd string) (domain.SessionConfig, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return domain.SessionConfig{}, err
	}

	//nolint:gosec // Path is discovered under the caller's working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return domain.SessionConfig{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file Siftfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.SessionConfig{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg := domain.SessionConfig{
		GraphPath: file.Graph,
		Workers:   file.Workers,
	}
	if cfg.GraphPath == "" {
		cfg.GraphPath = domain.DefaultGraphPath
	}
	if !filepath.IsAbs(cfg.GraphPath) {
		cfg.GraphPath = filepath.Join(filepath.Dir(configPath), cfg.GraphPath)
	}
	if cfg.Workers < 0 {
		l.Logger.Warn("negative worker count in siftfile, using one worker per CPU")
		cfg.Workers = 0
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.SiftFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}
