package domain

// SiftFileName is the name of the session configuration file.
const SiftFileName = "sift.yaml"

// DefaultGraphPath is where the serialized dependency graph lives when the
// siftfile does not override it.
const DefaultGraphPath = ".sift/graph.json"

// SessionConfig holds the resolved session settings.
type SessionConfig struct {
	// GraphPath is the location of the serialized dependency graph file.
	GraphPath string
	// Workers is the parallelism used for snapshot verification.
	// Zero means one worker per CPU.
	Workers int
}
