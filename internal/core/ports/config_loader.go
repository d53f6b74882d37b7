package ports

import "go.trai.ch/sift/internal/core/domain"

// ConfigLoader defines the interface for loading the session configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds and reads the siftfile starting from the given working
	// directory, walking up to the filesystem root.
	Load(cwd string) (domain.SessionConfig, error)
}
