package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolver maps service artifacts to their conventional log directories.
type Resolver struct {
	// Root is the directory containing one log directory per service
	// artifact.
	Root string
}

// DirectoryFor returns the log directory for a service artifact.
func (r Resolver) DirectoryFor(artifact string) string {
	return filepath.Join(r.Root, artifact)
}

// FilesIn lists the basenames of regular files directly inside dir. A
// directory that does not exist yields an empty list: a service with no logs
// yet is a valid state, not an error. Subdirectories are not descended into.
func (r Resolver) FilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list log directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
