package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navikt/lecturerooms/internal/api"
	"github.com/navikt/lecturerooms/internal/config"
	"github.com/navikt/lecturerooms/internal/repository"
	"github.com/navikt/lecturerooms/internal/service"
	"github.com/navikt/lecturerooms/internal/web"
)

// app bundles the wired components served by the binary
type app struct {
	svc        *service.OccupancyService
	webHandler *web.Handler
	handler    http.Handler
}

// newApp loads the state from repo and wires the API and web UI on one mux
func newApp(ctx context.Context, repo repository.Repository, serverConfig config.ServerConfig) (*app, error) {
	svc, err := service.NewOccupancyService(ctx, repo, service.WithNoticeTTL(serverConfig.NoticeTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize occupancy service: %w", err)
	}

	webHandler, err := web.NewHandler(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize web handler: %w", err)
	}

	// Push every outcome to connected browsers
	svc.RegisterUpdateCallback(webHandler.NotifyUpdate)

	mux := api.SetupRoutes(svc)
	webHandler.SetupRoutes(mux)

	return &app{
		svc:        svc,
		webHandler: webHandler,
		handler:    web.WrapMuxWithMiddleware(mux),
	}, nil
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	serverConfig := config.GetServerConfig()
	redisConfig := config.GetRedisConfig()

	repo, err := repository.NewRepository(redisConfig)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Close the Redis connection on exit when the store has one
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	application, err := newApp(startupCtx, repo, serverConfig)
	cancelStartup()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      application.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting lecturerooms server on port %s", serverConfig.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Close SSE connections first, they never finish on their own
		application.webHandler.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
