package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"logbay/internal/catalog"
)

func TestDirectoryFor(t *testing.T) {
	resolver := catalog.Resolver{Root: "/var/log/services"}
	require.Equal(t, "/var/log/services/metadata", resolver.DirectoryFor("metadata"))
}

func TestFilesInListsRegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "worker.log"), []byte("y\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "old.log"), []byte("z\n"), 0o644))

	resolver := catalog.Resolver{Root: filepath.Dir(dir)}
	names, err := resolver.FilesIn(dir)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"app.log", "worker.log"}, names)
}

func TestFilesInMissingDirectory(t *testing.T) {
	resolver := catalog.Resolver{Root: t.TempDir()}
	names, err := resolver.FilesIn(resolver.DirectoryFor("absent"))
	require.NoError(t, err)
	require.Empty(t, names)
}
