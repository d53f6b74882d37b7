package config

// Siftfile represents the structure of the sift.yaml configuration file.
type Siftfile struct {
	Version string `yaml:"version"`
	Graph   string `yaml:"graph"`
	Workers int    `yaml:"workers"`
}
