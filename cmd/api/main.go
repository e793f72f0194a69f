package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"rezeptplaner/internal/api"
	"rezeptplaner/internal/config"
	"rezeptplaner/internal/extract"
	"rezeptplaner/internal/logging"
	"rezeptplaner/internal/platform/gemini"
	"rezeptplaner/internal/platform/openrouter"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Init(cfg.LogLevel)
	defer logging.Sync()

	ctx := context.Background()

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		logger.Error("Failed to create extraction backend", zap.Error(err))
		os.Exit(1)
	}

	handler := api.NewHandler(extract.New(backend), cfg.Server.ExtractTimeout)
	router := api.SetupRouter(cfg, handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("provider", cfg.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Server exited")
}

// newBackend builds the configured generative backend.
func newBackend(ctx context.Context, cfg *config.Config) (extract.Backend, error) {
	switch cfg.Provider {
	case config.ProviderOpenRouter:
		return openrouter.NewClient(openrouter.Options{
			APIKey:    cfg.OpenRouter.APIKey,
			Model:     cfg.OpenRouter.Model,
			MaxTokens: cfg.OpenRouter.MaxTokens,
			Timeout:   cfg.OpenRouter.Timeout,
		}), nil
	default:
		return gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	}
}
