// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sift/internal/adapters/config"
	_ "go.trai.ch/sift/internal/adapters/fingerprint"
	_ "go.trai.ch/sift/internal/adapters/logger"
	_ "go.trai.ch/sift/internal/adapters/store"
	// Register app nodes.
	_ "go.trai.ch/sift/internal/app"
)
