package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"logbay/internal/catalog"
	"logbay/internal/logging"
	"logbay/internal/tail"
)

// handleList serves the full listing for one catalog.
func (s *Server) handleList(cat catalog.Catalog, segment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.writeJSON(w, http.StatusOK, cat.EndpointViews(s.base, segment))
	}
}

// handleEntry serves /{segment}/{service} (describe) and
// /{segment}/{service}/{log} (fetch) for one catalog.
func (s *Server) handleEntry(cat catalog.Catalog, segment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		rest := strings.TrimPrefix(r.URL.Path, "/"+segment+"/")
		parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
		switch len(parts) {
		case 1:
			s.describeSource(w, cat, segment, parts[0])
		case 2:
			s.fetchLog(w, cat, parts[0], parts[1])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (s *Server) describeSource(w http.ResponseWriter, cat catalog.Catalog, segment, service string) {
	source, ok := cat.Lookup(service)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Could not find service '%s'", service))
		return
	}
	s.writeJSON(w, http.StatusOK, source.EndpointView(s.base, segment))
}

// fetchLog returns the bounded tail of one log file as text/plain. A catalog
// miss and a file missing at read time (rotated away since the catalog was
// built) both surface as a bare 404; any other read failure is a bare 500
// with the detail kept server-side.
func (s *Server) fetchLog(w http.ResponseWriter, cat catalog.Catalog, service, log string) {
	path, ok := cat.ResolvePath(service, log)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	content, err := tail.ReadTail(path, s.maxLines)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.log().Error("log read failed",
			logging.String("service", service),
			logging.String("log", log),
			logging.String("path", path),
			logging.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		s.log().Error("failed to write log response", logging.Error(err))
	}
}

func (s *Server) handleServiceInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, s.info)
}
