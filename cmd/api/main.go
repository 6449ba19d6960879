package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ishalabs/isha-backend/internal/config"
	"github.com/ishalabs/isha-backend/internal/handler"
	"github.com/ishalabs/isha-backend/internal/service/ai"
	"github.com/ishalabs/isha-backend/internal/service/turn"
	"github.com/ishalabs/isha-backend/internal/workflow"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the completion client. Missing or invalid credentials are
	// not fatal: the pipeline serves templated demo replies without it.
	var completer turn.Completer
	modelConfigured := false
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize completion client: %v", err)
			log.Println("continuing in demo mode - check the ARK_* and MODEL_NAME environment variables")
		} else {
			completer = aiService
			modelConfigured = true
			log.Printf("completion client initialized, model=%s", aiService.ModelName())
		}
	} else {
		log.Println("model credentials not configured, running in demo mode")
	}

	processor := turn.NewProcessor(completer, cfg.Chat)

	runner, err := workflow.New(ctx, processor)
	if err != nil {
		log.Fatalf("failed to build workflow: %v", err)
	}

	router := handler.NewRouter(cfg, runner, modelConfigured)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Isha backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
