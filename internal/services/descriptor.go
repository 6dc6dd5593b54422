package services

import (
	"encoding/json"
	"fmt"
	"os"
)

// Type identifies the deployable component a descriptor refers to.
type Type struct {
	Artifact string `json:"artifact"`
}

// Descriptor is one entry in the node's service descriptor file.
type Descriptor struct {
	Type     Type `json:"type"`
	Disabled bool `json:"disabled"`
}

// Load reads and parses the descriptor file at path. The file is read once
// at startup; a missing or malformed file is a fatal configuration error for
// the caller.
func Load(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read services file: %w", err)
	}

	var descriptors []Descriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("parse services file %s: %w", path, err)
	}
	return descriptors, nil
}

// Enabled filters out descriptors flagged as disabled.
func Enabled(descriptors []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Disabled {
			continue
		}
		out = append(out, d)
	}
	return out
}
