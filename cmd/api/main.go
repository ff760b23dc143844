package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dcdn-backend/dcdn/registry"
	"dcdn-backend/dcdn/storage"
	"dcdn-backend/internal/config"
	"dcdn-backend/internal/handlers"
	"dcdn-backend/internal/metrics"
	"dcdn-backend/internal/middleware"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	engine := storage.NewEngine(cfg.MaxFileSize)
	nodeRegistry := registry.New()
	m := metrics.New()

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	fileHandler := handlers.NewFileHandler(engine, m, cfg.MaxFileSize)
	nodeHandler := handlers.NewNodeHandler(nodeRegistry, engine, m)

	router := http.NewServeMux()

	router.Handle("POST /api/files/upload", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.UploadFile)))
	router.Handle("GET /api/files/mine", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.ListMine)))
	router.Handle("GET /api/files/public", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.ListPublic)))
	router.Handle("GET /api/files/{id}/metadata", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.GetMetadata)))
	router.Handle("GET /api/files/{id}/download", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.DownloadFile)))
	router.Handle("DELETE /api/files/{id}", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.DeleteFile)))

	router.HandleFunc("POST /api/nodes/register", nodeHandler.RegisterNode)
	router.HandleFunc("POST /api/nodes/{id}/heartbeat", nodeHandler.Heartbeat)
	router.HandleFunc("GET /api/nodes", nodeHandler.ListNodes)
	router.HandleFunc("GET /api/stats", nodeHandler.NetworkStats)

	router.Handle("GET /metrics", metrics.Handler())
	router.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	handler := corsMiddleware(router)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Strict origin because of http-only cookies, wildcard won't work
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
