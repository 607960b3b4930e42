package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rkondo/realrent/internal/config"
	"github.com/rkondo/realrent/internal/handlers"
	"github.com/rkondo/realrent/internal/middleware"
	"github.com/rkondo/realrent/internal/notebook"
	"github.com/rkondo/realrent/internal/repo"
)

// newRouter wires repos, handlers, and the middleware chain. Kept separate
// from main so integration tests can build the full router around a mock DB.
func newRouter(database *sql.DB, cfg config.Config) http.Handler {
	userRepo := repo.NewUserRepo(database)
	propertyRepo := repo.NewPropertyRepo(database)
	auditRepo := repo.NewAuditRepo(database)

	runner := notebook.NewRunner(
		cfg.PapermillPath,
		cfg.NotebookPath,
		time.Duration(cfg.NotebookTimeoutSeconds)*time.Second,
	)

	authHandler := &handlers.AuthHandler{
		Users:       userRepo,
		Audit:       auditRepo,
		Secret:      []byte(cfg.JWTSecret),
		ExpireHours: cfg.JWTExpireHours,
	}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	propertyHandler := &handlers.PropertyHandler{Repo: propertyRepo, Audit: auditRepo}
	salaryHandler := &handlers.SalaryHandler{}
	notebookHandler := &handlers.NotebookHandler{Runner: runner, Audit: auditRepo}
	auditHandler := &handlers.AuditHandler{Repo: auditRepo}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := database.PingContext(r.Context()); err != nil {
			handlers.JSONError(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ready"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public, rate limited.
	authLimiter := middleware.AuthRateLimiter()
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
	})

	// Everything else requires a token.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.JWT([]byte(cfg.JWTSecret)))

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{username}", userHandler.GetUser)

		r.Post("/properties", propertyHandler.CreateProperty)
		r.Get("/properties/{userID}", propertyHandler.ListProperties)
		r.Delete("/properties/{id}", propertyHandler.DeleteProperty)

		r.Post("/salary", salaryHandler.ComputeMinuteRate)
		r.Post("/rent/evaluate", salaryHandler.EvaluateCommuteRent)

		r.Post("/notebook/run", notebookHandler.RunNotebook)

		r.Get("/audit", auditHandler.ListAudit)
	})

	return r
}
