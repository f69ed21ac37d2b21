package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/wodsmith/internal/movements"
	"github.com/claude/wodsmith/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	catalog *movements.Catalog
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, catalog *movements.Catalog, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: catalog,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(Identity)

	// Write endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(RequireAPIKey(s.apiKey))
		r.Post("/api/v1/programs", s.handleCreateProgram)
		r.Post("/api/v1/programs/{programID}/workouts", s.handleIngestWorkout)
		r.Put("/api/v1/users/{userID}/loads/{canonicalID}", s.handleUpsertRecord)
	})

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/programs", s.handleListPrograms)
	s.router.Get("/api/v1/programs/{programID}/workouts", s.handleListProgramWorkouts)
	s.router.Get("/api/v1/programs/{programID}/analytics", s.handleProgramAnalytics)
	s.router.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
	s.router.Get("/api/v1/movements", s.handleListMovements)
	s.router.Get("/api/v1/movements/resolve", s.handleResolveMovement)
	s.router.Get("/api/v1/users/{userID}/loads/{canonicalID}", s.handleSuggestedLoad)
}
