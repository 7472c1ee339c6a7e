package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/tendant/campus-content/pkg/campus/api"
	"github.com/tendant/campus-content/pkg/campus/config"
	"github.com/tendant/chi-demo/app"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	opts := []config.Option{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		opts = append(opts, config.WithFile(path))
	}
	opts = append(opts, config.WithEnv())

	cfg, err := config.Load(opts...)
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.ServerConfig) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(cfg *config.ServerConfig) error {
	ctx := context.Background()

	repo, err := cfg.BuildRepository(ctx)
	if err != nil {
		return fmt.Errorf("failed to build repository: %w", err)
	}
	defer repo.Close()

	store, err := cfg.BuildMediaStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to build media store: %w", err)
	}

	tokens, err := cfg.BuildTokenIssuer()
	if err != nil {
		return fmt.Errorf("failed to build token issuer: %w", err)
	}
	if cfg.AdminPasswordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH is not set; admin login is disabled")
	}

	handler := api.NewHandler(repo,
		api.WithAuthenticator(cfg.BuildAuthenticator()),
		api.WithTokenIssuer(tokens),
		api.WithRequireAuth(cfg.RequireAuth),
		api.WithMediaStore(store),
		api.WithMaxMediaBytes(cfg.MediaMaxBytes),
	)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Campus content server starting",
			"port", cfg.Port,
			"env", cfg.Environment,
			"database_type", cfg.DatabaseType,
			"media_storage", cfg.MediaStorage,
			"require_auth", cfg.RequireAuth)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exiting")
	return nil
}

func newRouter(cfg *config.ServerConfig, handler *api.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if !cfg.IsProduction() {
		r.Use(devCORS)
	}

	app.RoutesHealthz(r)
	r.Get("/healthz/ready", handler.Ready)

	r.Mount("/api", handler.Routes())
	return r
}

// devCORS lets a locally served frontend call the API.
func devCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
