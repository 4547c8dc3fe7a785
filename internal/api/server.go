package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sinagolchin/SYNTHIUM/internal/auth"
	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/internal/embeddings"
	"github.com/sinagolchin/SYNTHIUM/internal/engine"
	"github.com/sinagolchin/SYNTHIUM/internal/projection"
	"github.com/sinagolchin/SYNTHIUM/internal/storage"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// anonymousUser is the history bucket for requests without a user id
const anonymousUser = "anonymous"

// Config carries the dependencies the server routes requests to.
// Auth is optional; when nil the auth routes are not mounted and the
// API runs open.
type Config struct {
	Engine  *engine.Service
	Store   storage.HistoryStore
	Auth    auth.Service
	Version string
	Logger  *slog.Logger
}

type Server struct {
	router  *chi.Mux
	engine  *engine.Service
	store   storage.HistoryStore
	auth    auth.Service
	hub     *hub
	version string
	logger  *slog.Logger
}

func NewServer(cfg Config) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:  r,
		engine:  cfg.Engine,
		store:   cfg.Store,
		auth:    cfg.Auth,
		hub:     newHub(),
		version: cfg.Version,
		logger:  logger,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		if s.auth != nil {
			r.Use(auth.OptionalMiddleware(s.auth))
		}

		r.Post("/analyze", s.handleAnalyze)
		r.Get("/history", s.handleHistory)
		r.Get("/export", s.handleExport)

		r.Get("/phenomena", s.handleListPhenomena)
		r.Get("/phenomena/{term}", s.handleGetPhenomenon)

		r.Post("/transform", s.handleTransform)
		r.Get("/trends", s.handleTrends)

		r.Get("/ws", s.handleWS)
	})

	// Auth routes (only when auth is configured)
	if s.auth != nil {
		h := auth.NewHandlers(s.auth)
		s.router.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(s.auth))
				r.Get("/me", h.Me)
			})
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

// ServeHTTP makes the server mountable and testable as a plain handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// userID resolves the acting user: explicit request value first, then
// authenticated claims, then the shared anonymous bucket.
func (s *Server) userID(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if claims, ok := auth.GetUserFromContext(r.Context()); ok {
		return claims.UserID
	}
	return anonymousUser
}

// respondServiceError maps sentinel errors from the core packages onto
// HTTP statuses; anything unrecognized becomes a 500 with the fallback
// message.
func (s *Server) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrInvalidVector), errors.Is(err, projection.ErrEmptyInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrUnknownPhenomenon):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrInsufficientHistory):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, embeddings.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		s.logger.Error(fallback, "error", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
