package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/rkondo/realrent/internal/config"
	"github.com/rkondo/realrent/internal/db"
	"github.com/rkondo/realrent/internal/repo"
	"github.com/rkondo/realrent/internal/scheduler"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.JWTSecret == "supersecretkey" {
		log.Fatal("JWT_SECRET must be set in prod")
	}

	database, err := db.Connect(cfg.DSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Ensure the schema once at startup instead of lazily on first use.
	if err := db.Migrate(cfg.DSN()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	slog.Info("connected to database")

	auditRepo := repo.NewAuditRepo(database)
	retention := scheduler.StartAuditRetention(auditRepo, cfg.AuditRetentionDays)
	defer retention.Stop()

	r := newRouter(database, cfg)

	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "addr", addr)
		err = http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		slog.Info("starting server", "addr", addr)
		err = http.ListenAndServe(addr, r)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
