package ports

import "go.trai.ch/sift/internal/core/domain"

// Hasher defines the interface for computing node result fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// FingerprintData computes the fingerprint of an in-memory result.
	FingerprintData(data []byte) domain.Fingerprint

	// FingerprintFile computes the fingerprint of a file's content.
	FingerprintFile(path string) (domain.Fingerprint, error)
}
