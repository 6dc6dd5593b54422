package catalog_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"logbay/internal/catalog"
)

func TestLookupReturnsMatchingService(t *testing.T) {
	c := catalog.New([]catalog.Source{
		{Service: "metadata", Logs: map[string]string{"app.log": "/var/log/services/metadata/app.log"}},
		{Service: "ingest", Logs: map[string]string{}},
	})

	for _, service := range []string{"metadata", "ingest"} {
		source, ok := c.Lookup(service)
		require.True(t, ok, "expected %s to be found", service)
		require.Equal(t, service, source.Service)
	}
}

func TestLookupMisses(t *testing.T) {
	c := catalog.New([]catalog.Source{{Service: "metadata"}})

	_, ok := c.Lookup("unknown")
	require.False(t, ok)

	_, ok = c.Lookup("")
	require.False(t, ok)

	_, ok = c.Lookup("Metadata") // lookups are case-sensitive
	require.False(t, ok)
}

func TestResolvePath(t *testing.T) {
	c := catalog.New([]catalog.Source{
		{Service: "metadata", Logs: map[string]string{"app.log": "/var/log/services/metadata/app.log"}},
	})

	path, ok := c.ResolvePath("metadata", "app.log")
	require.True(t, ok)
	require.Equal(t, "/var/log/services/metadata/app.log", path)

	for _, tc := range []struct{ service, log string }{
		{"unknown", "app.log"},
		{"metadata", "other.log"},
		{"", "app.log"},
		{"metadata", ""},
	} {
		_, ok := c.ResolvePath(tc.service, tc.log)
		require.False(t, ok, "expected miss for %q/%q", tc.service, tc.log)
	}
}

func TestNewSkipsDuplicateServiceIDs(t *testing.T) {
	c := catalog.New([]catalog.Source{
		{Service: "metadata", Logs: map[string]string{"first.log": "/a"}},
		{Service: "metadata", Logs: map[string]string{"second.log": "/b"}},
	})

	require.Equal(t, 1, c.Len())
	source, ok := c.Lookup("metadata")
	require.True(t, ok)
	require.Contains(t, source.Logs, "first.log")
}

func TestSystemCatalogFixedEntries(t *testing.T) {
	c := catalog.SystemCatalog()

	nginx, ok := c.Lookup("nginx")
	require.True(t, ok)
	require.Equal(t, map[string]string{
		"access.log": "/var/log/nginx/access.log",
		"error.log":  "/var/log/nginx/error.log",
	}, nginx.Logs)

	redis, ok := c.Lookup("redis")
	require.True(t, ok)
	require.Equal(t, map[string]string{"redis.log": "/var/log/redis/redis.log"}, redis.Logs)
}

func TestEndpointViewsIdempotent(t *testing.T) {
	base, err := url.Parse("http://node.example.org/")
	require.NoError(t, err)

	c := catalog.SystemCatalog()
	first := c.EndpointViews(base, "system-logs")
	second := c.EndpointViews(base, "system-logs")
	require.Equal(t, first, second)
}
