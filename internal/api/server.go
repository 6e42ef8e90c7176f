package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/skillgallery/internal/catalog"
	"github.com/dgallion1/skillgallery/internal/config"
	"github.com/dgallion1/skillgallery/internal/prose"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP read side of the skills gallery.
type Server struct {
	router  chi.Router
	catalog *catalog.Catalog
	prose   *prose.Renderer
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cat *catalog.Catalog, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		catalog: cat,
		prose:   prose.NewRenderer(),
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/site", s.handleSite)
		r.Get("/skills", s.handleSkills)
		r.Get("/skills/search", s.handleSearch)
		r.Get("/categories", s.handleCategories)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.catalog.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"skills":    len(snap.Skills),
		"loaded_at": snap.LoadedAt.UTC().Format(time.RFC3339),
	})
}
