package catalog

import "net/url"

// EndpointView is the client-facing projection of a Source: the same shape,
// but each log name mapped to the fully qualified URL it can be fetched
// from instead of a filesystem path.
type EndpointView struct {
	Service string            `json:"service"`
	Logs    map[string]string `json:"logs"`
}

// EndpointView builds the URL-bearing projection of a source. Log URLs are
// joined as base + segment + service + name; segment is the route prefix the
// source is served under ("system-logs" or "service-logs"). The source
// itself is never mutated.
func (s Source) EndpointView(base *url.URL, segment string) EndpointView {
	logs := make(map[string]string, len(s.Logs))
	for name := range s.Logs {
		logs[name] = base.JoinPath(segment, s.Service, name).String()
	}
	return EndpointView{Service: s.Service, Logs: logs}
}

// EndpointViews projects every source in the catalog, preserving catalog
// order.
func (c Catalog) EndpointViews(base *url.URL, segment string) []EndpointView {
	views := make([]EndpointView, 0, len(c.sources))
	for _, source := range c.sources {
		views = append(views, source.EndpointView(base, segment))
	}
	return views
}
