package catalog

// Source is one named log source: a service id plus its discovered log
// files, keyed by basename and mapped to absolute paths. Sources are built
// once at startup and never mutated afterward.
type Source struct {
	Service string
	Logs    map[string]string
}

// Catalog is an ordered, immutable collection of log sources with O(1)
// lookup by service id.
type Catalog struct {
	sources []Source
	index   map[string]int
}

// New builds a catalog preserving the order of sources. Later duplicates of
// a service id are ignored; ids are unique within a catalog by construction.
func New(sources []Source) Catalog {
	c := Catalog{
		sources: make([]Source, 0, len(sources)),
		index:   make(map[string]int, len(sources)),
	}
	for _, source := range sources {
		if _, ok := c.index[source.Service]; ok {
			continue
		}
		c.index[source.Service] = len(c.sources)
		c.sources = append(c.sources, source)
	}
	return c
}

// Sources returns the catalog entries in their original order.
func (c Catalog) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Len reports the number of sources in the catalog.
func (c Catalog) Len() int {
	return len(c.sources)
}

// Lookup returns the source for a service id. The second return is false
// when the id is empty or unknown; a miss is a normal outcome.
func (c Catalog) Lookup(service string) (Source, bool) {
	if service == "" {
		return Source{}, false
	}
	i, ok := c.index[service]
	if !ok {
		return Source{}, false
	}
	return c.sources[i], true
}

// ResolvePath maps a (service, log) pair to the absolute file path recorded
// at build time. Misses (empty arguments, unknown service, unknown log) are
// reported through the ok bool. This is the single source of truth for
// not-found decisions; callers must not special-case empty strings
// themselves.
func (c Catalog) ResolvePath(service, log string) (string, bool) {
	source, ok := c.Lookup(service)
	if !ok || log == "" {
		return "", false
	}
	path, ok := source.Logs[log]
	if !ok {
		return "", false
	}
	return path, true
}
