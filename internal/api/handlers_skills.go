package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgallion1/skillgallery/internal/catalog"
)

// handleSite returns the whole document. With format=html the prose
// sections are rendered to HTML.
func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	snap := s.catalog.Snapshot()

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		writeCached(w, r, snap.ETag, snap.Doc)
	case "html":
		rendered, err := s.prose.RenderSite(snap.Doc)
		if err != nil {
			s.log.Error("render site", "error", err)
			jsonError(w, "failed to render site", http.StatusInternalServerError)
			return
		}
		writeCached(w, r, variantETag(snap.ETag, "html"), rendered)
	default:
		jsonError(w, "unsupported format: "+format, http.StatusBadRequest)
	}
}

// handleSkills returns the categories with their skills.
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	snap := s.catalog.Snapshot()
	writeCached(w, r, snap.ETag, map[string]any{
		"categories": snap.Doc.Categories,
	})
}

// handleCategories returns category names with skill counts.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	snap := s.catalog.Snapshot()
	writeCached(w, r, snap.ETag, map[string]any{
		"categories": snap.Counts,
	})
}

// handleSearch filters and paginates the flattened skill list.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}
		page = n
	}

	perPage := s.cfg.PageSize
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(w, "per_page must be a positive integer", http.StatusBadRequest)
			return
		}
		perPage = min(n, s.cfg.MaxPageSize)
	}

	snap := s.catalog.Snapshot()
	res := snap.Search(catalog.Query{
		Text:     q.Get("q"),
		Category: q.Get("category"),
		Page:     page,
		PerPage:  perPage,
	})
	writeCached(w, r, snap.ETag, res)
}

// writeCached writes v as JSON with an ETag, or 304 if the client already
// holds that version.
func writeCached(w http.ResponseWriter, r *http.Request, etag string, v any) {
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// variantETag derives a distinct validator for another representation.
func variantETag(etag, variant string) string {
	return strings.TrimSuffix(etag, `"`) + "-" + variant + `"`
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
