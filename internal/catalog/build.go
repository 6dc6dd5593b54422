package catalog

import (
	"fmt"
	"path/filepath"

	"logbay/internal/services"
)

// System log paths are fixed per node layout and are not derived from the
// service descriptor file.
const (
	nginxAccessLogPath = "/var/log/nginx/access.log"
	nginxErrorLogPath  = "/var/log/nginx/error.log"
	redisLogPath       = "/var/log/redis/redis.log"
)

// SystemCatalog returns the fixed catalog of node-level infrastructure logs.
func SystemCatalog() Catalog {
	return New([]Source{
		{
			Service: "nginx",
			Logs: map[string]string{
				"access.log": nginxAccessLogPath,
				"error.log":  nginxErrorLogPath,
			},
		},
		{
			Service: "redis",
			Logs: map[string]string{
				"redis.log": redisLogPath,
			},
		},
	})
}

// BuildServiceCatalog derives the per-service catalog from the node's
// service descriptors. Disabled descriptors are skipped entirely; enabled
// services whose log directory does not exist yet contribute a source with
// an empty log set. The result is a point-in-time snapshot of the
// filesystem: files removed afterward surface as not-found at read time.
func BuildServiceCatalog(descriptors []services.Descriptor, resolver Resolver) (Catalog, error) {
	sources := make([]Source, 0, len(descriptors))
	for _, descriptor := range services.Enabled(descriptors) {
		artifact := descriptor.Type.Artifact
		dir := resolver.DirectoryFor(artifact)
		names, err := resolver.FilesIn(dir)
		if err != nil {
			return Catalog{}, fmt.Errorf("build catalog for %s: %w", artifact, err)
		}

		logs := make(map[string]string, len(names))
		for _, name := range names {
			logs[name] = filepath.Join(dir, name)
		}
		sources = append(sources, Source{Service: artifact, Logs: logs})
	}
	return New(sources), nil
}
