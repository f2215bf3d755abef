package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/rsantiago76/BetterMe-sub000/internal/auth"
	"github.com/rsantiago76/BetterMe-sub000/internal/blob"
	"github.com/rsantiago76/BetterMe-sub000/internal/catalog"
	"github.com/rsantiago76/BetterMe-sub000/internal/config"
	"github.com/rsantiago76/BetterMe-sub000/internal/macros"
	"github.com/rsantiago76/BetterMe-sub000/internal/mealprep"
	"github.com/rsantiago76/BetterMe-sub000/internal/reports"
	"github.com/rsantiago76/BetterMe-sub000/internal/stats"
	"github.com/rsantiago76/BetterMe-sub000/internal/storage"
	"github.com/rsantiago76/BetterMe-sub000/internal/storage/memory"
	"github.com/rsantiago76/BetterMe-sub000/internal/storage/postgres"
	"github.com/rsantiago76/BetterMe-sub000/internal/suppsched"
)

// Server is the HTTP API server.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        storage.Storage
	authMiddleware *auth.Middleware
}

// New builds a fully wired server: storage, blob store, services, routes.
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initStorage()
	s.routes()
	return s
}

// initStorage picks Postgres when DATABASE_URL is set, otherwise the
// in-memory fallback. A failed Postgres connection also falls back so local
// development works without a database.
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("storage: using in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("storage: connecting to PostgreSQL...")
	pgStorage, err := postgres.New(context.Background(), s.config.DatabaseURL)
	if err != nil {
		log.Printf("storage: PostgreSQL connection failed: %v", err)
		log.Println("storage: falling back to in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("storage: PostgreSQL connected")
	s.storage = pgStorage
}

// routes registers all endpoints.
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)

	// Shake catalog API
	catalogHandler := catalog.NewHandler()
	s.mux.HandleFunc("GET /v1/shakes", catalogHandler.HandleList)
	s.mux.HandleFunc("GET /v1/shakes/{id}", catalogHandler.HandleGet)

	// Macro calculator API
	macrosHandler := macros.NewHandler()
	s.mux.HandleFunc("POST /v1/macros/calculate", macrosHandler.HandleCalculate)

	// User stats API
	statsService := stats.NewService(s.storage)
	statsHandler := stats.NewHandler(statsService)
	s.mux.HandleFunc("GET /v1/stats", statsHandler.HandleGet)
	s.mux.HandleFunc("PUT /v1/stats", statsHandler.HandlePut)

	// Weekly plans API
	planService := mealprep.NewService(s.storage)
	planHandler := mealprep.NewHandler(planService)
	s.mux.HandleFunc("POST /v1/plans/preview", planHandler.HandlePreview)
	s.mux.HandleFunc("POST /v1/plans", planHandler.HandleCreate)
	s.mux.HandleFunc("GET /v1/plans", planHandler.HandleList)
	s.mux.HandleFunc("GET /v1/plans/{id}", planHandler.HandleGet)
	s.mux.HandleFunc("DELETE /v1/plans/{id}", planHandler.HandleDelete)

	// Plan report export
	blobStore, blobMode, err := blob.NewBlobStore(s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob store init: %v", err)
	}
	log.Printf("blob: using mode=%s", blobMode)
	reportService := reports.NewService(planService, blobStore, s.config.Blob.S3.PresignTTLSeconds)
	reportHandler := reports.NewHandler(reportService)
	s.mux.HandleFunc("GET /v1/plans/{id}/report", reportHandler.HandleExport)

	// Supplement schedule API
	suppHandler := suppsched.NewHandler()
	s.mux.HandleFunc("GET /v1/supplements", suppHandler.HandleList)
	s.mux.HandleFunc("POST /v1/supplements/schedule", suppHandler.HandleSchedule)
}

// Handler returns the full middleware chain (outermost first):
// CORS → Rate Limit → Auth → Router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	handler = s.authMiddleware.RequireAuth(handler)
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

// Start runs the HTTP server; blocks until it exits.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("server listening on http://localhost%s", addr)
	log.Printf("health check: http://localhost%s/healthz", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// Close releases server resources (storage pool).
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}

// handleHealthz reports server liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}
